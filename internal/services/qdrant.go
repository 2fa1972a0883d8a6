package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/models"
)

// QuestionIndex is the vector index over the question bank.
type QuestionIndex interface {
	InitCollection(ctx context.Context) error
	UpsertQuestion(ctx context.Context, kind models.QuestionKind, id uint, text string, embedding []float32) error
	SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]SearchResult, error)
	DeleteQuestions(ctx context.Context, kind models.QuestionKind) error
}

type SearchResult struct {
	QuestionID uint
	Kind       models.QuestionKind
	Score      float32
	Text       string
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantService(urlStr, apiKey, collectionName string, vectorSize uint64) (QuestionIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     vectorSize,
	}, nil
}

func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Info().Str("collection", q.collectionName).Msg("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Info().Str("collection", q.collectionName).Msg("✅ Qdrant collection created")
	return nil
}

// UpsertQuestion stores the question under a point ID derived from kind and
// row ID, so re-indexing overwrites instead of duplicating.
func (q *qdrantService) UpsertQuestion(ctx context.Context, kind models.QuestionKind, id uint, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(QuestionPointID(kind, id)),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"question_id": int64(id),
			"kind":        string(kind),
			"text":        text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

func (q *qdrantService) SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]SearchResult, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("kind", string(kind)),
		},
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		payload := point.Payload
		result := SearchResult{Score: point.Score}

		if v, ok := payload["question_id"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_IntegerValue); ok {
				result.QuestionID = uint(val.IntegerValue)
			}
		}
		if v, ok := payload["kind"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				result.Kind = models.QuestionKind(val.StringValue)
			}
		}
		if v, ok := payload["text"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				result.Text = val.StringValue
			}
		}

		if result.QuestionID == 0 {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// DeleteQuestions removes every point of the given kind.
func (q *qdrantService) DeleteQuestions(ctx context.Context, kind models.QuestionKind) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("kind", string(kind)),
			},
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s points: %w", kind, err)
	}

	log.Info().Str("kind", string(kind)).Msg("🗑️  Question points deleted")
	return nil
}

func QuestionPointID(kind models.QuestionKind, id uint) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%d", kind, id))).String()
}
