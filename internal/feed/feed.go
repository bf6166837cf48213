// Package feed computes the derived "reviews from people you follow"
// view by composing the follow and review stores.
package feed

import (
	"context"

	"github.com/valoreapp/valore-backend/internal/store"
)

// Limit caps a feed page at the 50 newest followee reviews.
const Limit = 50

// FollowingSource yields the ids a user follows.
type FollowingSource interface {
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
}

// ReviewSource yields the newest reviews by a set of authors.
type ReviewSource interface {
	RecentByAuthors(ctx context.Context, authorIDs []string, limit int) ([]store.ReviewWithDetails, error)
}

// Assembler implements store.FeedStore over the two sources.
type Assembler struct {
	follows FollowingSource
	reviews ReviewSource
}

var _ store.FeedStore = (*Assembler)(nil)

func NewAssembler(follows FollowingSource, reviews ReviewSource) *Assembler {
	return &Assembler{follows: follows, reviews: reviews}
}

// GetFeed returns the newest reviews authored by the user's followees,
// newest first, capped at Limit. A user following nobody short-circuits
// to an empty feed before any review query runs: an empty IN filter
// must never reach the database.
func (a *Assembler) GetFeed(ctx context.Context, userID string) ([]store.FeedItem, error) {
	followingIDs, err := a.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		return []store.FeedItem{}, nil
	}

	reviews, err := a.reviews.RecentByAuthors(ctx, followingIDs, Limit)
	if err != nil {
		return nil, err
	}

	items := make([]store.FeedItem, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, store.FeedItem{
			Review: rv,
			Friend: rv.User,
		})
	}
	return items, nil
}
