package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
)

type IndexJob struct {
	Kind models.QuestionKind
	ID   uint
}

func (j IndexJob) String() string {
	return fmt.Sprintf("%s:%d", j.Kind, j.ID)
}

// IndexWorker embeds questions and pushes them into the question index.
type IndexWorker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(job IndexJob)
}

type indexWorker struct {
	questionRepo repositories.QuestionRepository
	embedder     Embedder
	index        QuestionIndex
	jobQueue     chan IndexJob
	concurrency  int
	pollInterval time.Duration
	batchSize    int
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once

	mu       sync.Mutex
	inflight map[IndexJob]struct{}
}

func NewIndexWorker(
	questionRepo repositories.QuestionRepository,
	embedder Embedder,
	index QuestionIndex,
	concurrency int,
	pollInterval time.Duration,
	batchSize int,
) IndexWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	if batchSize < 1 {
		batchSize = 10
	}
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &indexWorker{
		questionRepo: questionRepo,
		embedder:     embedder,
		index:        index,
		jobQueue:     make(chan IndexJob, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		stopChan:     make(chan struct{}),
		inflight:     make(map[IndexJob]struct{}),
	}
}

func (w *indexWorker) Start(ctx context.Context) {
	log.Info().Int("workers", w.concurrency).Msg("🚀 Starting index worker")

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollUnindexed(ctx)
}

func (w *indexWorker) Stop() {
	w.stopOnce.Do(func() {
		log.Info().Msg("🛑 Stopping index worker...")
		close(w.stopChan)
		w.wg.Wait()
		log.Info().Msg("✅ Index worker stopped")
	})
}

// EnqueueJob skips jobs that are already queued or running.
func (w *indexWorker) EnqueueJob(job IndexJob) {
	w.mu.Lock()
	if _, ok := w.inflight[job]; ok {
		w.mu.Unlock()
		return
	}
	w.inflight[job] = struct{}{}
	w.mu.Unlock()

	select {
	case w.jobQueue <- job:
		log.Debug().Stringer("job", job).Msg("📥 Index job enqueued")
	case <-w.stopChan:
		w.done(job)
		log.Warn().Stringer("job", job).Msg("⚠️  Worker stopped, cannot enqueue job")
	}
}

func (w *indexWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Debug().Int("worker", workerID).Msg("👷 Worker stopped")
			return
		case <-ctx.Done():
			return
		case job := <-w.jobQueue:
			if err := w.indexQuestion(ctx, job); err != nil {
				log.Error().Err(err).Int("worker", workerID).Stringer("job", job).Msg("❌ Failed to index question")
			} else {
				log.Debug().Int("worker", workerID).Stringer("job", job).Msg("✅ Question indexed")
			}
			w.done(job)
		}
	}
}

func (w *indexWorker) done(job IndexJob) {
	w.mu.Lock()
	delete(w.inflight, job)
	w.mu.Unlock()
}

func (w *indexWorker) indexQuestion(ctx context.Context, job IndexJob) error {
	var text string
	switch job.Kind {
	case models.KindTheory:
		q, err := w.questionRepo.FindTheoryByID(job.ID)
		if err != nil {
			return err
		}
		text = q.SearchText()
	case models.KindCoding:
		q, err := w.questionRepo.FindCodingByID(job.ID)
		if err != nil {
			return err
		}
		text = q.SearchText()
	default:
		return fmt.Errorf("unknown question kind %q", job.Kind)
	}

	vectors, err := w.embedder.EmbedTexts(ctx, text)
	if err != nil {
		return err
	}
	if len(vectors) != 1 {
		return fmt.Errorf("expected 1 embedding, got %d", len(vectors))
	}

	if err := w.index.UpsertQuestion(ctx, job.Kind, job.ID, text, vectors[0]); err != nil {
		return err
	}

	return w.questionRepo.MarkIndexed(job.Kind, job.ID)
}

func (w *indexWorker) pollUnindexed(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.enqueueUnindexed()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.enqueueUnindexed()
		}
	}
}

func (w *indexWorker) enqueueUnindexed() {
	var jobs []IndexJob

	theory, err := w.questionRepo.FindUnindexedTheory(w.batchSize)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️  Failed to fetch unindexed theory questions")
	}
	for _, q := range theory {
		jobs = append(jobs, IndexJob{Kind: models.KindTheory, ID: q.ID})
	}

	coding, err := w.questionRepo.FindUnindexedCoding(w.batchSize)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️  Failed to fetch unindexed coding questions")
	}
	for _, q := range coding {
		jobs = append(jobs, IndexJob{Kind: models.KindCoding, ID: q.ID})
	}

	if len(jobs) > 0 {
		log.Info().Int("count", len(jobs)).Msg("📋 Found unindexed questions")
	}

	for _, job := range jobs {
		w.EnqueueJob(job)
	}
}
