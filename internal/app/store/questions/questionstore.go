// internal/app/store/questions/questionstore.go
package questionstore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/huddlehq/huddle/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAnswerNotFound is returned when a question exists but the targeted
// embedded answer id does not match any of its answers.
var ErrAnswerNotFound = errors.New("answer not found")

// Filter names accepted by List. Anything else sorts like FilterAll.
const (
	FilterAll        = "all"
	FilterRecent     = "recent"
	FilterUnanswered = "unanswered"
	FilterMostVoted  = "most-voted"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("questions")}
}

// Create inserts a question with zeroed counters and no answers.
func (s *Store) Create(ctx context.Context, q models.Question) (models.Question, error) {
	q.ID = primitive.NewObjectID()
	if q.Tags == nil {
		q.Tags = []string{}
	}
	q.Answers = []models.Answer{}
	q.Votes = 0
	q.Views = 0
	q.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, q); err != nil {
		return models.Question{}, err
	}
	return q, nil
}

// GetByID loads a question by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Question, error) {
	var q models.Question
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		return models.Question{}, err
	}
	return q, nil
}

// ListOptions selects, orders, and pages a question listing.
type ListOptions struct {
	Filter string // one of the Filter* constants
	Search string // free text; '#' is stripped, matched as a substring
	Skip   int64
	Limit  int64
}

// List runs the filtered, searched, paged query and also counts the total
// matches for pagination.
//
// The search term matches case-insensitively as a substring of the title
// or body, or exactly against a lower-cased tag, combined with OR. The
// unanswered filter restricts to questions with no answers; when both a
// search and the unanswered filter are present the two clauses are
// combined under $and so neither silently wins.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.Question, int64, error) {
	var clauses []bson.M

	if term := strings.TrimSpace(strings.ReplaceAll(opts.Search, "#", "")); term != "" {
		pattern := regexp.QuoteMeta(term)
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"tags": bson.M{"$in": bson.A{strings.ToLower(term)}}},
		}})
	}

	if opts.Filter == FilterUnanswered {
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"answers": bson.M{"$exists": false}},
			bson.M{"answers": bson.M{"$size": 0}},
		}})
	}

	query := bson.M{}
	switch len(clauses) {
	case 1:
		query = clauses[0]
	case 2:
		query = bson.M{"$and": bson.A{clauses[0], clauses[1]}}
	}

	sortField := "createdAt"
	if opts.Filter == FilterMostVoted {
		sortField = "votes"
	}

	cur, err := s.c.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var questions []models.Question
	if err := cur.All(ctx, &questions); err != nil {
		return nil, 0, err
	}

	total, err := s.c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// AddAnswer appends the answer to the question's embedded list. Returns
// mongo.ErrNoDocuments when the question is absent.
func (s *Store) AddAnswer(ctx context.Context, questionID primitive.ObjectID, a models.Answer) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": questionID},
		bson.M{"$push": bson.M{"answers": a}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Vote atomically adjusts the question's vote counter by delta. There is
// no floor: counters may go negative. Returns mongo.ErrNoDocuments when
// the question is absent.
func (s *Store) Vote(ctx context.Context, questionID primitive.ObjectID, delta int) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": questionID},
		bson.M{"$inc": bson.M{"votes": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AcceptAnswer marks the targeted answer accepted after clearing every
// accepted flag on the question. The two steps are separate single-
// document updates; the clear always "succeeds" even when nothing was set,
// which keeps a repeated accept idempotent. Returns mongo.ErrNoDocuments
// when the question is absent and ErrAnswerNotFound when the answer id
// does not match in the second step.
func (s *Store) AcceptAnswer(ctx context.Context, questionID primitive.ObjectID, answerID string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": questionID},
		bson.M{"$set": bson.M{"answers.$[].accepted": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	res, err = s.c.UpdateOne(ctx,
		bson.M{"_id": questionID, "answers.answerId": answerID},
		bson.M{"$set": bson.M{"answers.$.accepted": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAnswerNotFound
	}
	return nil
}

// VoteAnswer atomically adjusts the matched embedded answer's vote counter
// by delta. Returns ErrAnswerNotFound when the question/answer pair does
// not match.
func (s *Store) VoteAnswer(ctx context.Context, questionID primitive.ObjectID, answerID string, delta int) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": questionID, "answers.answerId": answerID},
		bson.M{"$inc": bson.M{"answers.$.votes": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAnswerNotFound
	}
	return nil
}
