package service

import (
	"context"
	"time"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/post"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/repository"
)

// MetadataSource is the video-data API boundary.
type MetadataSource interface {
	VideoInfo(ctx context.Context, videoID string) (*model.VideoMetadata, error)
	Comments(ctx context.Context, videoID string, maxComments int) ([]model.Comment, error)
	ChannelVideos(ctx context.Context, channelID string, limit int) ([]model.ChannelVideo, error)
}

// TranscriptSource is the caption-track API boundary.
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string) ([]model.TranscriptEntry, error)
}

// Completer is the completion-provider boundary.
type Completer interface {
	ReorganizeChunk(ctx context.Context, chunk string) (string, error)
	GenerateBlogPost(ctx context.Context, processedTranscript string, meta model.VideoMetadata) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

// PostServiceOptions tunes the generation pipeline.
type PostServiceOptions struct {
	MaxChunkSize int
	MaxComments  int
	ProductHosts []string
}

// PostService runs the full pipeline for one video: cache lookup,
// metadata and comment fetch, transcript fetch with fallback, chunked
// reorganization, blog generation, formatting, and persistence. All
// upstream calls within one request are strictly sequential.
type PostService struct {
	metadata    MetadataSource
	transcripts TranscriptSource
	completer   Completer
	cache       *CacheService
	repo        *repository.PostRepo
	processor   *post.Processor
	opts        PostServiceOptions
}

func NewPostService(metadata MetadataSource, transcripts TranscriptSource, completer Completer, cache *CacheService, repo *repository.PostRepo, opts PostServiceOptions) *PostService {
	if opts.MaxChunkSize <= 0 {
		opts.MaxChunkSize = 10000
	}
	if opts.MaxComments <= 0 {
		opts.MaxComments = 50
	}
	return &PostService{
		metadata:    metadata,
		transcripts: transcripts,
		completer:   completer,
		cache:       cache,
		repo:        repo,
		processor:   post.NewProcessor(completer, opts.MaxChunkSize),
		opts:        opts,
	}
}

// Generate produces the blog post for a video. A cache hit short-circuits
// the whole pipeline and returns the stored document unchanged.
func (s *PostService) Generate(ctx context.Context, videoID string) (*model.BlogPost, error) {
	if cached, err := s.cache.GetPost(ctx, videoID); err != nil {
		middleware.Logger.Warn().Str("video_id", videoID).Err(err).Msg("cache read failed, regenerating")
	} else if cached != nil {
		return &model.BlogPost{
			VideoID:     cached.VideoID,
			Title:       cached.Title,
			HTML:        cached.BlogHTML,
			Metadata:    model.VideoMetadata{VideoID: cached.VideoID, Title: cached.Title},
			FromCache:   true,
			GeneratedAt: cached.CreatedAt,
		}, nil
	}

	meta, err := s.metadata.VideoInfo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	// Comment failures degrade to an empty list; the post is still generated.
	comments, err := s.metadata.Comments(ctx, videoID, s.opts.MaxComments)
	if err != nil {
		middleware.Logger.Warn().Str("video_id", videoID).Err(err).Msg("comment fetch failed, continuing without comments")
		comments = nil
	}

	// A permanently missing transcript substitutes title+description as
	// source text. An empty-but-present transcript yields an empty
	// reorganized document instead; the two states stay distinct.
	sourceText := ""
	noTranscript := false
	entries, err := s.transcripts.Fetch(ctx, videoID)
	switch {
	case err != nil:
		middleware.Logger.Warn().Str("video_id", videoID).Err(err).Msg("transcript unavailable, falling back to title and description")
		noTranscript = true
		sourceText = meta.Title + "\n\n" + meta.Description
	default:
		sourceText = s.processor.ProcessTranscript(ctx, entries, videoID)
	}

	raw, err := s.completer.GenerateBlogPost(ctx, sourceText, *meta)
	if err != nil {
		return nil, err
	}

	products := post.ExtractProducts(meta.Description, s.opts.ProductHosts)
	chapters := post.ExtractChapters(meta.Description)
	body := post.FormatBody(raw, *meta)
	html := post.BuildDocument(*meta, body, chapters, products, comments)

	result := &model.BlogPost{
		VideoID:      videoID,
		Title:        meta.Title,
		HTML:         html,
		Products:     products,
		Chapters:     chapters,
		Comments:     comments,
		Metadata:     *meta,
		NoTranscript: noTranscript,
		GeneratedAt:  time.Now().UTC(),
	}

	s.persist(ctx, result)
	return result, nil
}

// persist writes the finished post to the vector cache and the archive.
// Neither write can fail the request; a generated post is always served.
func (s *PostService) persist(ctx context.Context, result *model.BlogPost) {
	embedding, err := s.completer.Embed(ctx, result.HTML)
	if err != nil {
		middleware.Logger.Warn().Str("video_id", result.VideoID).Err(err).Msg("embedding failed, caching without vector")
	}

	if err := s.cache.SetPost(ctx, &model.CachedPost{
		VideoID:   result.VideoID,
		Title:     result.Title,
		Embedding: embedding,
		BlogHTML:  result.HTML,
		CreatedAt: result.GeneratedAt,
	}); err != nil {
		middleware.Logger.Warn().Str("video_id", result.VideoID).Err(err).Msg("cache write failed")
	}

	if err := s.repo.Save(ctx, &model.PostRecord{
		VideoID:     result.VideoID,
		Title:       result.Title,
		HTML:        result.HTML,
		Model:       s.completer.Model(),
		GeneratedAt: result.GeneratedAt,
	}); err != nil {
		middleware.Logger.Warn().Str("video_id", result.VideoID).Err(err).Msg("archive write failed")
	}
}

// Lookup returns a previously generated post from the cache or the
// archive without invoking the pipeline.
func (s *PostService) Lookup(ctx context.Context, videoID string) (*model.BlogPost, error) {
	cached, err := s.cache.GetPost(ctx, videoID)
	if err != nil {
		middleware.Logger.Warn().Str("video_id", videoID).Err(err).Msg("cache read failed, trying archive")
	}
	if cached != nil {
		return &model.BlogPost{
			VideoID:     cached.VideoID,
			Title:       cached.Title,
			HTML:        cached.BlogHTML,
			Metadata:    model.VideoMetadata{VideoID: cached.VideoID, Title: cached.Title},
			FromCache:   true,
			GeneratedAt: cached.CreatedAt,
		}, nil
	}

	rec, err := s.repo.FindByVideoID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return &model.BlogPost{
		VideoID:     rec.VideoID,
		Title:       rec.Title,
		HTML:        rec.HTML,
		Metadata:    model.VideoMetadata{VideoID: rec.VideoID, Title: rec.Title},
		FromCache:   true,
		GeneratedAt: rec.GeneratedAt,
	}, nil
}

// Recent lists the newest archived posts.
func (s *PostService) Recent(ctx context.Context, limit int) ([]model.PostRecord, error) {
	return s.repo.ListRecent(ctx, limit)
}

// ChannelVideos lists a channel's newest videos for batch generation.
func (s *PostService) ChannelVideos(ctx context.Context, channelID string, limit int) ([]model.ChannelVideo, error) {
	return s.metadata.ChannelVideos(ctx, channelID, limit)
}
