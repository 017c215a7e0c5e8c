package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCommentQuery(r.db.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error building query")
		return models.Comment{}, err
	}

	var commentID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&commentID); err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Int64("user_id", comment.UserID).
			Int64("video_id", comment.VideoID).
			Msg("error inserting comment")
		return models.Comment{}, r.writeError(err)
	}

	return r.GetCommentByID(ctx, commentID)
}

func (r *commentRepository) GetCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentByIDQuery(r.db.builder, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetCommentByID").Msg("error building query")
		return models.Comment{}, err
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Comment{}, ErrCommentNotFound
	case err != nil:
		log.Err(err).Str("func", "*commentRepository.GetCommentByID").Int64("comment_id", commentID).Msg("error scanning comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return comment, nil
}

// ListComments returns comments ordered by id. An empty result is not an
// error: resolving the filter's reference is the caller's job.
func (r *commentRepository) ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, scanErr := scanComment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.ListComments").Msg("error scanning comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error iterating comment rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetCommentByID(ctx, update.CommentID)
	}

	query, args, err := buildUpdateCommentQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error building query")
		return models.Comment{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Int64("comment_id", update.CommentID).Msg("error updating comment")
		return models.Comment{}, r.writeError(err)
	}

	if err = expectAffected(result, ErrCommentNotFound); err != nil {
		return models.Comment{}, err
	}

	return r.GetCommentByID(ctx, update.CommentID)
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Comment{}.TableName(), commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Int64("comment_id", commentID).Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrCommentNotFound)
}

func (r *commentRepository) writeError(err error) error {
	if r.db.classify(err) == ForeignKeyViolation {
		return ErrReferenceNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment

	err := row.Scan(
		&comment.CommentID,
		&comment.Body,
		&comment.UserID,
		&comment.Username,
		&comment.VideoID,
		&comment.VideoURL,
	)

	return comment, err
}
