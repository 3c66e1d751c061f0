package report

import (
	"context"
	"database/sql"

	"prioritiser-backend/internal/assessment"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new submission.
func (r *PGRepo) Create(ctx context.Context, sub Submission) error {
	const query = `
INSERT INTO submissions (
    id,
    name,
    company,
    email,
    phone,
    foundations_score,
    website_score,
    seo_score,
    email_score,
    ppc_score,
    social_score,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.Name,
		nullable(sub.Company),
		sub.Email,
		nullable(sub.Phone),
		sub.Scores[assessment.ChannelFoundations],
		sub.Scores[assessment.ChannelWebsite],
		sub.Scores[assessment.ChannelSEO],
		sub.Scores[assessment.ChannelEmail],
		sub.Scores[assessment.ChannelPPC],
		sub.Scores[assessment.ChannelSocial],
		sub.CreatedAt,
	)
	return err
}

// ListRecent returns the newest submissions first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, name, company, email, phone, foundations_score, website_score, seo_score, email_score, ppc_score, social_score, created_at
FROM submissions
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		var company, phone sql.NullString
		var foundations, website, seo, email, ppc, social int
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&company,
			&sub.Email,
			&phone,
			&foundations,
			&website,
			&seo,
			&email,
			&ppc,
			&social,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		if company.Valid {
			sub.Company = company.String
		}
		if phone.Valid {
			sub.Phone = phone.String
		}
		sub.Scores = assessment.ChannelScores{
			assessment.ChannelFoundations: foundations,
			assessment.ChannelWebsite:     website,
			assessment.ChannelSEO:         seo,
			assessment.ChannelEmail:       email,
			assessment.ChannelPPC:         ppc,
			assessment.ChannelSocial:      social,
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
