package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// imageTables maps each image kind to the table holding its records. Both
// tables name their key "id" and carry image and thumbnail columns.
var imageTables = map[domain.ImageKind]string{ //nolint: gochecknoglobals
	domain.ImageKindHotel: hotelsTable,
	domain.ImageKindStay:  staysTable,
}

func imageTable(kind domain.ImageKind) (string, error) {
	table, ok := imageTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", storage.ErrUnknownImageKind, kind)
	}

	return table, nil
}

// HotelByID returns the hotel with the given ID, or nil.
func (p *PgSQL) HotelByID(ctx context.Context, id domain.HotelID) (*domain.Hotel, error) {
	var row PgHotel
	found, err := p.Builder.From(hotelsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch hotel by id: %w", classify(err))
	}
	if !found {
		return nil, nil
	}

	hotel := row.toDomain()

	return &hotel, nil
}

// StayByID returns the stay with the given ID, or nil.
func (p *PgSQL) StayByID(ctx context.Context, id domain.StayID) (*domain.Stay, error) {
	var row PgStay
	found, err := p.Builder.From(staysTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch stay by id: %w", classify(err))
	}
	if !found {
		return nil, nil
	}

	stay, err := row.toDomain()
	if err != nil {
		return nil, err
	}

	return &stay, nil
}

// SaveThumbnail writes the record's thumbnail reference. Only the thumbnail
// column is touched so a concurrent image update is not overwritten.
func (p *PgSQL) SaveThumbnail(ctx context.Context, rec domain.DerivableImage) error {
	table, err := imageTable(rec.ImageKind())
	if err != nil {
		return err
	}

	res, err := p.Builder.Update(table).
		Set(goqu.Record{"thumbnail": nullString(rec.ThumbnailRef())}).
		Where(goqu.I("id").Eq(rec.RecordID())).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not save %s thumbnail in pg: %w", rec.ImageKind(), classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", storage.ErrRecordNotFound, rec.ImageKind(), rec.RecordID())
	}

	return nil
}

// MissingThumbnails lists records of kind with an image and no thumbnail.
func (p *PgSQL) MissingThumbnails(ctx context.Context,
	kind domain.ImageKind,
	limit uint) ([]domain.ImageRecord, error) {
	table, err := imageTable(kind)
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := p.Builder.From(table).
		Select("id").
		Where(
			goqu.I("image").IsNotNull(),
			goqu.I("image").Neq(""),
			goqu.Or(
				goqu.I("thumbnail").IsNull(),
				goqu.I("thumbnail").Eq(""),
			),
		).
		Order(goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch %s records missing thumbnails: %w", kind, classify(err))
	}

	out := make([]domain.ImageRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ImageRecord{Kind: kind, ID: id})
	}

	return out, nil
}
