package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

const commentsPageSize = 100

// Client wraps the YouTube Data API v3 for video metadata, comment
// threads, and channel video listings.
type Client struct {
	svc *youtube.Service
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube.NewService: %w", err)
	}
	return &Client{svc: svc}, nil
}

// VideoInfo fetches snippet, statistics and contentDetails for one video.
func (c *Client) VideoInfo(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	resp, err := c.svc.Videos.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("youtube.video_info", err)
	}
	if len(resp.Items) == 0 {
		return nil, model.E(model.KindNotFound, "youtube.video_info", fmt.Sprintf("video %q not found", videoID), nil)
	}

	item := resp.Items[0]
	meta := &model.VideoMetadata{
		VideoID:     videoID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		PublishedAt: parseTimestamp(item.Snippet.PublishedAt),
	}
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		meta.ThumbnailURL = item.Snippet.Thumbnails.High.Url
	}
	if item.Statistics != nil {
		meta.ViewCount = item.Statistics.ViewCount
		meta.LikeCount = item.Statistics.LikeCount
	}
	if item.ContentDetails != nil {
		meta.Duration = item.ContentDetails.Duration
	}
	return meta, nil
}

// Comments pages through a video's top-level comment threads in reverse
// chronological order, up to the given cap. A cap <= 0 means "first page
// only". Videos with comments disabled return an empty slice, not an error.
func (c *Client) Comments(ctx context.Context, videoID string, maxComments int) ([]model.Comment, error) {
	var comments []model.Comment
	pageToken := ""

	for {
		call := c.svc.CommentThreads.
			List([]string{"snippet"}).
			VideoId(videoID).
			MaxResults(commentsPageSize).
			Order("time").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 403 {
				// Comments disabled on the video.
				return nil, nil
			}
			return nil, wrapAPIError("youtube.comments", err)
		}

		for _, item := range resp.Items {
			s := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, model.Comment{
				Author:      s.AuthorDisplayName,
				Text:        s.TextDisplay,
				LikeCount:   s.LikeCount,
				PublishedAt: parseTimestamp(s.PublishedAt),
			})
			if maxComments > 0 && len(comments) >= maxComments {
				return comments, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" || maxComments <= 0 {
			return comments, nil
		}
	}
}

// ChannelVideos lists a channel's most recent videos, newest first.
func (c *Client) ChannelVideos(ctx context.Context, channelID string, limit int) ([]model.ChannelVideo, error) {
	if limit <= 0 {
		limit = 5
	}

	resp, err := c.svc.Search.
		List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("youtube.channel_videos", err)
	}
	if len(resp.Items) == 0 {
		return nil, model.E(model.KindNotFound, "youtube.channel_videos", fmt.Sprintf("no videos found for channel %q", channelID), nil)
	}

	videos := make([]model.ChannelVideo, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		videos = append(videos, model.ChannelVideo{
			VideoID:     item.Id.VideoId,
			Title:       item.Snippet.Title,
			PublishedAt: parseTimestamp(item.Snippet.PublishedAt),
		})
	}
	return videos, nil
}

func wrapAPIError(op string, err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 404:
			return model.E(model.KindNotFound, op, "resource not found", err)
		case 403, 429:
			return model.E(model.KindUnavailable, op, "quota exhausted or access denied", err)
		}
	}
	return model.E(model.KindUpstream, op, "youtube api request failed", err)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
