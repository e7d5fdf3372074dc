package repository

import (
	"context"
	"log/slog"
	"time"

	"alert-engine/internal/domain/posting"
	"alert-engine/internal/infra"
	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postingColumns = `
	p.id, p.title, p.short_description, p.description, p.location,
	p.experience_text, p.employment_type, p.apply_url, p.created_at,
	o.name, o.logo_url`

type postingRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostingRepository(pool *pgxpool.Pool, logger *slog.Logger) usecase.PostingRepository {
	return &postingRepository{pool: pool, logger: logger}
}

func (r *postingRepository) FindCreatedAfter(ctx context.Context, t time.Time) ([]*posting.Posting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM postings p
		 JOIN organizations o ON o.id = p.organization_id
		 WHERE p.created_at > $1 AND p.status = 'active'
		 ORDER BY p.created_at`,
		t,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query recent postings", err)
	}
	defer rows.Close()

	var postings []*posting.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			r.logger.Warn("skipping malformed posting row", "error", err)
			continue
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read posting rows", err)
	}
	return postings, nil
}

func (r *postingRepository) FindByID(ctx context.Context, id uuid.UUID) (*posting.Posting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM postings p
		 JOIN organizations o ON o.id = p.organization_id
		 WHERE p.id = $1`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query posting", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read posting row", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "posting not found",
			errs.Mark(errors.Newf("posting %s", id), errs.ErrPostingNotFound))
	}
	p, err := scanPosting(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan posting row", err)
	}
	return p, nil
}

func scanPosting(rows pgx.Rows) (*posting.Posting, error) {
	var (
		p              posting.Posting
		shortDesc      pgtype.Text
		description    pgtype.Text
		location       pgtype.Text
		experienceText pgtype.Text
		employmentType pgtype.Text
		applyURL       pgtype.Text
		createdAt      pgtype.Timestamptz
		orgLogo        pgtype.Text
	)
	if err := rows.Scan(
		&p.ID, &p.Title, &shortDesc, &description, &location,
		&experienceText, &employmentType, &applyURL, &createdAt,
		&p.Organization.Name, &orgLogo,
	); err != nil {
		return nil, err
	}
	if shortDesc.Valid {
		p.ShortDescription = shortDesc.String
	}
	if description.Valid {
		p.Description = description.String
	}
	if location.Valid {
		p.Location = location.String
	}
	if experienceText.Valid {
		p.ExperienceText = experienceText.String
	}
	if employmentType.Valid {
		p.EmploymentType = employmentType.String
	}
	if applyURL.Valid {
		p.ApplyURL = applyURL.String
	}
	p.CreatedAt = createdAt.Time
	if orgLogo.Valid {
		p.Organization.LogoURL = orgLogo.String
	}
	return &p, nil
}
