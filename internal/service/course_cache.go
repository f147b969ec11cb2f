package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/student-registry/internal/domain"
)

// CourseCache is a best-effort read-through cache for course lookups.
type CourseCache interface {
	Get(ctx context.Context, id int64) (*domain.Course, bool)
	Set(ctx context.Context, course *domain.Course)
}

type redisCourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCourseCache builds a Redis-backed course cache. Cache failures are
// swallowed; the caller falls through to the database.
func NewRedisCourseCache(client *redis.Client, ttl time.Duration) CourseCache {
	return &redisCourseCache{client: client, ttl: ttl}
}

func (c *redisCourseCache) Get(ctx context.Context, id int64) (*domain.Course, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, courseKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var course domain.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, false
	}
	return &course, true
}

func (c *redisCourseCache) Set(ctx context.Context, course *domain.Course) {
	if c.client == nil || course == nil {
		return
	}
	raw, err := json.Marshal(course)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, courseKey(course.ID), raw, c.ttl).Err()
}

func courseKey(id int64) string {
	return "course:" + strconv.FormatInt(id, 10)
}
