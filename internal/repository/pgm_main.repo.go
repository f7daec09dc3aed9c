package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProgramRepo struct {
	db *pgxpool.Pool
}

func NewProgramRepo(db *pgxpool.Pool) *ProgramRepo {
	return &ProgramRepo{db: db}
}

type RewardRepo struct {
	db *pgxpool.Pool
}

func NewRewardRepo(db *pgxpool.Pool) *RewardRepo {
	return &RewardRepo{db: db}
}

type PartnerRepo struct {
	db *pgxpool.Pool
}

func NewPartnerRepo(db *pgxpool.Pool) *PartnerRepo {
	return &PartnerRepo{db: db}
}
