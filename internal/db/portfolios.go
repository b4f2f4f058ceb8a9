package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/portfolio-studio/internal/types"
)

// GetPortfolio loads a user's portfolio with its sections ordered by display
// position. Returns ErrNotFound when the user has no portfolio yet.
func (db *DB) GetPortfolio(ctx context.Context, userID uuid.UUID) (*types.PortfolioSnapshot, error) {
	var (
		portfolioID uuid.UUID
		template    string
		theme       string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, template, theme FROM portfolios WHERE user_id = $1`,
		userID,
	).Scan(&portfolioID, &template, &theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT section_type, content, display_order, updated_at
		 FROM portfolio_sections WHERE portfolio_id = $1
		 ORDER BY display_order`,
		portfolioID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio sections: %w", err)
	}
	defer rows.Close()

	var sections []types.Section
	for rows.Next() {
		var section types.Section
		if err := rows.Scan(&section.Type, &section.Content, &section.Order, &section.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio section: %w", err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read portfolio sections: %w", err)
	}

	return &types.PortfolioSnapshot{
		UserID:   userID.String(),
		Sections: sections,
		Template: template,
		Theme:    theme,
	}, nil
}

// SavePortfolio upserts the user's portfolio shell and replaces its sections
// in one transaction.
func (db *DB) SavePortfolio(ctx context.Context, snapshot *types.PortfolioSnapshot) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var portfolioID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO portfolios (user_id, template, theme)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET template = $2, theme = $3, updated_at = NOW()
		 RETURNING id`,
		snapshot.UserID, snapshot.Template, snapshot.Theme,
	).Scan(&portfolioID)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM portfolio_sections WHERE portfolio_id = $1`, portfolioID,
	); err != nil {
		return fmt.Errorf("failed to clear portfolio sections: %w", err)
	}

	for _, section := range snapshot.Sections {
		if _, err := tx.Exec(ctx,
			`INSERT INTO portfolio_sections (portfolio_id, section_type, content, display_order)
			 VALUES ($1, $2, $3, $4)`,
			portfolioID, section.Type, section.Content, section.Order,
		); err != nil {
			return fmt.Errorf("failed to insert portfolio section: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit portfolio: %w", err)
	}
	return nil
}

// ReplaceSections overwrites the section rows of an existing portfolio,
// leaving template and theme untouched. Returns ErrNotFound when the user has
// no portfolio.
func (db *DB) ReplaceSections(ctx context.Context, userID uuid.UUID, sections []types.Section) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var portfolioID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM portfolios WHERE user_id = $1`, userID,
	).Scan(&portfolioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find portfolio: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM portfolio_sections WHERE portfolio_id = $1`, portfolioID,
	); err != nil {
		return fmt.Errorf("failed to clear portfolio sections: %w", err)
	}

	for _, section := range sections {
		if _, err := tx.Exec(ctx,
			`INSERT INTO portfolio_sections (portfolio_id, section_type, content, display_order)
			 VALUES ($1, $2, $3, $4)`,
			portfolioID, section.Type, section.Content, section.Order,
		); err != nil {
			return fmt.Errorf("failed to insert portfolio section: %w", err)
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE portfolios SET updated_at = NOW() WHERE id = $1`, portfolioID,
	); err != nil {
		return fmt.Errorf("failed to touch portfolio: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sections: %w", err)
	}
	return nil
}

// UpdateTemplateTheme changes the portfolio's template and theme without
// touching sections.
func (db *DB) UpdateTemplateTheme(ctx context.Context, userID uuid.UUID, template, theme string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE portfolios SET template = $2, theme = $3, updated_at = NOW() WHERE user_id = $1`,
		userID, template, theme,
	)
	if err != nil {
		return fmt.Errorf("failed to update template and theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
