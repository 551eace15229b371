// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-prediction-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

const submissionTable = "submission"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SubmissionRepository interface {
	Save(submission *domain.Submission) error
	GetByID(id string) (*domain.Submission, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type submissionRepository struct {
	conn *postgres.Connection
}

func NewSubmissionRepository(conn *postgres.Connection) SubmissionRepository {
	return &submissionRepository{
		conn: conn,
	}
}

func (r *submissionRepository) Save(submission *domain.Submission) error {
	payload, err := json.Marshal(submission.Records)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar os registros do envio")
	}

	query, args, err := squirrel.
		Insert(submissionTable).
		Columns("id", "filename", "row_count", "records", "created_at").
		Values(submission.ID, submission.Filename, submission.RowCount, payload, submission.CreatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			filename = EXCLUDED.filename,
			row_count = EXCLUDED.row_count,
			records = EXCLUDED.records`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar o envio")
	}

	return nil
}

func (r *submissionRepository) GetByID(id string) (*domain.Submission, error) {
	query, args, err := squirrel.
		Select("s.id", "s.filename", "s.row_count", "s.records", "s.created_at").
		From(submissionTable + " s").
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRow(query, args...)

	var (
		submission domain.Submission
		payload    []byte
	)

	err = row.Scan(
		&submission.ID,
		&submission.Filename,
		&submission.RowCount,
		&payload,
		&submission.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear o envio")
	}

	if err := json.Unmarshal(payload, &submission.Records); err != nil {
		return nil, errors.Wrap(err, "erro ao desserializar os registros do envio")
	}

	return &submission, nil
}

// DeleteOlderThan remove os envios criados antes do corte e retorna a
// quantidade removida. Usado pela varredura de retenção.
func (r *submissionRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(submissionTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover envios expirados")
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao contar envios removidos")
	}

	return removed, nil
}
