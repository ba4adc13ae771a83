package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository/models"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/util"

	"github.com/jmoiron/sqlx"
)

// PostRepository persists community forum posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	// ListChannelPosts returns top-level posts of a channel, newest first.
	ListChannelPosts(ctx context.Context, channel string) ([]domain.Post, error)
	// ListReplies returns the replies to a post, oldest first.
	ListReplies(ctx context.Context, parentPostID string) ([]domain.Post, error)
	CountTopLevelPostsByUser(ctx context.Context, userID string) (int, error)
	GetPostByID(ctx context.Context, postID string) (*domain.Post, error)
	// DeletePostTree removes a post together with its replies.
	DeletePostTree(ctx context.Context, postID string) error
	DeletePostsByUser(ctx context.Context, userID string) error
}

type sqlxPostRepository struct {
	db DBTX
}

func NewSQLXPostRepository(db *sqlx.DB) PostRepository {
	return &sqlxPostRepository{db: db}
}

func (r *sqlxPostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	executor := GetExecutor(ctx, r.db)

	if post.ID == "" {
		post.ID = util.NewULID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	m := models.Post{
		ID:           post.ID,
		UserID:       post.UserID,
		Channel:      post.Channel,
		Content:      post.Content,
		MediaURL:     util.StringToNullString(post.MediaURL),
		ParentPostID: util.StringToNullString(post.ParentPostID),
		CreatedAt:    post.CreatedAt,
	}

	query := `INSERT INTO posts (id, user_id, channel, content, media_url, parent_post_id, created_at)
	          VALUES (:id, :user_id, :channel, :content, :media_url, :parent_post_id, :created_at)`
	if _, err := executor.NamedExecContext(ctx, query, &m); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func toDomainPost(m *models.PostWithAuthor) domain.Post {
	return domain.Post{
		ID:           m.ID,
		UserID:       m.UserID,
		Username:     m.Username,
		ExamGroup:    m.ExamGroup,
		Channel:      m.Channel,
		Content:      m.Content,
		MediaURL:     m.MediaURL.String,
		ParentPostID: m.ParentPostID.String,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *sqlxPostRepository) ListChannelPosts(ctx context.Context, channel string) ([]domain.Post, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.PostWithAuthor
	query := `SELECT p.*, u.username, u.exam_group
	          FROM posts p
	          JOIN users u ON u.id = p.user_id
	          WHERE p.channel = ? AND p.parent_post_id IS NULL
	          ORDER BY p.created_at DESC`
	if err := executor.SelectContext(ctx, &rows, query, channel); err != nil {
		return nil, fmt.Errorf("failed to list channel posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, toDomainPost(&rows[i]))
	}
	return posts, nil
}

func (r *sqlxPostRepository) ListReplies(ctx context.Context, parentPostID string) ([]domain.Post, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.PostWithAuthor
	query := `SELECT p.*, u.username, u.exam_group
	          FROM posts p
	          JOIN users u ON u.id = p.user_id
	          WHERE p.parent_post_id = ?
	          ORDER BY p.created_at`
	if err := executor.SelectContext(ctx, &rows, query, parentPostID); err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, toDomainPost(&rows[i]))
	}
	return posts, nil
}

func (r *sqlxPostRepository) CountTopLevelPostsByUser(ctx context.Context, userID string) (int, error) {
	executor := GetExecutor(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM posts WHERE user_id = ? AND parent_post_id IS NULL`
	if err := executor.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (r *sqlxPostRepository) GetPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	executor := GetExecutor(ctx, r.db)

	var row models.PostWithAuthor
	query := `SELECT p.*, u.username, u.exam_group
	          FROM posts p
	          JOIN users u ON u.id = p.user_id
	          WHERE p.id = ?`
	if err := executor.GetContext(ctx, &row, query, postID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post := toDomainPost(&row)
	return &post, nil
}

func (r *sqlxPostRepository) DeletePostTree(ctx context.Context, postID string) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM posts WHERE parent_post_id = ?`, postID); err != nil {
		return fmt.Errorf("failed to delete replies: %w", err)
	}

	res, err := executor.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.NewNotFoundError("post not found")
	}
	return nil
}

func (r *sqlxPostRepository) DeletePostsByUser(ctx context.Context, userID string) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, `DELETE FROM posts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}
	return nil
}
