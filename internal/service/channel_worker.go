package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

// ChannelWorker generates posts for a channel's recent videos in the
// background. Jobs queue in memory and a single goroutine drains them,
// generating one post at a time: the pipeline never fans out completion
// calls in parallel.
type ChannelWorker struct {
	posts     *PostService
	batchSize int
	queue     chan string

	mu   sync.Mutex
	jobs map[string]*model.ChannelJob
	seq  int
}

// NewChannelWorker creates a worker that processes up to batchSize videos
// per channel job.
func NewChannelWorker(posts *PostService, batchSize int) *ChannelWorker {
	if batchSize <= 0 {
		batchSize = 5
	}
	return &ChannelWorker{
		posts:     posts,
		batchSize: batchSize,
		queue:     make(chan string, 16),
		jobs:      make(map[string]*model.ChannelJob),
	}
}

// Start begins draining the job queue. Blocks until ctx is cancelled.
func (w *ChannelWorker) Start(ctx context.Context) {
	middleware.Logger.Info().Int("batch_size", w.batchSize).Msg("channel-worker: starting")

	for {
		select {
		case jobID := <-w.queue:
			w.run(ctx, jobID)
		case <-ctx.Done():
			middleware.Logger.Info().Msg("channel-worker: stopping (context cancelled)")
			return
		}
	}
}

// Enqueue registers a new job for a channel and queues it for processing.
// Returns the job snapshot, or an error when the queue is full.
func (w *ChannelWorker) Enqueue(channelID string) (*model.ChannelJob, error) {
	w.mu.Lock()
	w.seq++
	job := &model.ChannelJob{
		JobID:      fmt.Sprintf("job-%d", w.seq),
		ChannelID:  channelID,
		State:      model.JobQueued,
		EnqueuedAt: time.Now().UTC(),
	}
	w.jobs[job.JobID] = job
	w.mu.Unlock()

	select {
	case w.queue <- job.JobID:
		return w.snapshot(job.JobID), nil
	default:
		w.mu.Lock()
		job.State = model.JobFailed
		job.LastError = "job queue is full"
		w.mu.Unlock()
		return nil, model.E(model.KindUnavailable, "worker.enqueue", "job queue is full, try again later", nil)
	}
}

// Job returns a snapshot of the given job, or nil if unknown.
func (w *ChannelWorker) Job(jobID string) *model.ChannelJob {
	return w.snapshot(jobID)
}

// JobsForChannel returns snapshots of all jobs for a channel.
func (w *ChannelWorker) JobsForChannel(channelID string) []model.ChannelJob {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []model.ChannelJob
	for _, job := range w.jobs {
		if job.ChannelID == channelID {
			out = append(out, *job)
		}
	}
	return out
}

// run executes one channel job: list recent videos, then generate each
// post sequentially. Per-video failures are counted, not fatal.
func (w *ChannelWorker) run(ctx context.Context, jobID string) {
	job := w.snapshot(jobID)
	if job == nil {
		return
	}
	start := time.Now()

	videos, err := w.posts.ChannelVideos(ctx, job.ChannelID, w.batchSize)
	if err != nil {
		w.update(jobID, func(j *model.ChannelJob) {
			j.State = model.JobFailed
			j.LastError = err.Error()
			j.FinishedAt = time.Now().UTC()
		})
		middleware.Logger.Warn().Str("channel_id", job.ChannelID).Err(err).Msg("channel-worker: video listing failed")
		return
	}

	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.VideoID
	}
	w.update(jobID, func(j *model.ChannelJob) {
		j.State = model.JobRunning
		j.VideoIDs = ids
	})

	for _, videoID := range ids {
		if ctx.Err() != nil {
			return
		}
		if _, err := w.posts.Generate(ctx, videoID); err != nil {
			middleware.Logger.Warn().Str("video_id", videoID).Err(err).Msg("channel-worker: generation failed")
			w.update(jobID, func(j *model.ChannelJob) {
				j.Failed++
				j.LastError = err.Error()
			})
			continue
		}
		w.update(jobID, func(j *model.ChannelJob) { j.Done++ })
	}

	w.update(jobID, func(j *model.ChannelJob) {
		j.State = model.JobCompleted
		j.FinishedAt = time.Now().UTC()
	})
	middleware.Logger.Info().
		Str("channel_id", job.ChannelID).
		Int("videos", len(ids)).
		Dur("elapsed", time.Since(start)).
		Msg("channel-worker: job complete")
}

func (w *ChannelWorker) snapshot(jobID string) *model.ChannelJob {
	w.mu.Lock()
	defer w.mu.Unlock()
	job, ok := w.jobs[jobID]
	if !ok {
		return nil
	}
	cp := *job
	return &cp
}

func (w *ChannelWorker) update(jobID string, fn func(*model.ChannelJob)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if job, ok := w.jobs[jobID]; ok {
		fn(job)
	}
}
