package usecase

import (
	"context"
	"errors"

	"program-service/pkg/xerrors"

	"go.uber.org/zap"
)

// DeletePartner removes a partner and every record that references it:
// customers of its links, payouts, commissions, the links themselves, then
// the partner row, all in one transaction. Afterwards it invalidates link
// routing caches, deletes the partner's connected payment account, and
// removes its stored image. A missing partner is a no-op so the cleanup job
// can be re-run safely.
func (uc *PartnerUsecase) DeletePartner(ctx context.Context, partnerID string) error {
	if partnerID == "" {
		return errors.New("invalid partner id")
	}

	partner, links, err := uc.partners.GetPartnerWithLinks(ctx, partnerID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			uc.logger.Warn("partner not found, skipping delete",
				zap.String("partner_id", partnerID))
			return nil
		}
		return err
	}

	if err := uc.partners.DeleteCascade(ctx, partner, links); err != nil {
		return err
	}

	// Non-relational cleanup runs only once the rows are gone.
	if err := uc.links.CleanupLinks(ctx, links); err != nil {
		return err
	}

	if partner.StripeConnectID != nil && *partner.StripeConnectID != "" {
		if err := uc.payments.DeleteAccount(ctx, *partner.StripeConnectID); err != nil {
			return err
		}
	}

	if partner.Image != nil {
		if key, ok := uc.storage.ObjectKey(*partner.Image); ok {
			if err := uc.storage.Delete(ctx, key); err != nil {
				return err
			}
		}
	}

	uc.logger.Info("partner deleted",
		zap.String("partner_id", partner.ID),
		zap.Int("links", len(links)))

	return nil
}
