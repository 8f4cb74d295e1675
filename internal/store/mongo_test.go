package store

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akadam/exercise-tracker/internal/models"
)

// projectedExercises extracts the exercises expression from the
// pipeline's $project stage.
func projectedExercises(t *testing.T, p []bson.D) interface{} {
	t.Helper()
	if len(p) != 2 {
		t.Fatalf("pipeline has %d stages, want 2", len(p))
	}
	if p[1][0].Key != "$project" {
		t.Fatalf("second stage is %q, want $project", p[1][0].Key)
	}
	proj := p[1][0].Value.(bson.M)
	if proj["username"] != 1 {
		t.Errorf("username projection = %v, want 1", proj["username"])
	}
	return proj["exercises"]
}

func TestLogPipelineUnfiltered(t *testing.T) {
	p := logPipeline(primitive.NewObjectID(), models.LogFilter{})
	if got := projectedExercises(t, p); got != "$exercises" {
		t.Errorf("exercises = %v, want $exercises passthrough", got)
	}
}

func TestLogPipelineMatchesID(t *testing.T) {
	id := primitive.NewObjectID()
	p := logPipeline(id, models.LogFilter{})
	if p[0][0].Key != "$match" {
		t.Fatalf("first stage is %q, want $match", p[0][0].Key)
	}
	match := p[0][0].Value.(bson.M)
	if match["_id"] != id {
		t.Errorf("match _id = %v, want %v", match["_id"], id)
	}
}

func TestLogPipelineBounds(t *testing.T) {
	from := time.Date(2020, time.January, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	p := logPipeline(primitive.NewObjectID(), models.LogFilter{From: from, To: to})

	filter := projectedExercises(t, p).(bson.M)["$filter"].(bson.M)
	if filter["input"] != "$exercises" {
		t.Errorf("filter input = %v", filter["input"])
	}
	conds := filter["cond"].(bson.M)["$and"].(bson.A)
	if len(conds) != 2 {
		t.Fatalf("len(conds) = %d, want 2", len(conds))
	}
	gt := conds[0].(bson.M)["$gt"].(bson.A)
	if gt[0] != "$$entry.date" || gt[1] != from {
		t.Errorf("$gt = %v", gt)
	}
	lt := conds[1].(bson.M)["$lt"].(bson.A)
	if lt[0] != "$$entry.date" || lt[1] != to {
		t.Errorf("$lt = %v", lt)
	}
}

func TestLogPipelineOnlyLowerBound(t *testing.T) {
	from := time.Date(2020, time.January, 5, 0, 0, 0, 0, time.UTC)
	p := logPipeline(primitive.NewObjectID(), models.LogFilter{From: from})

	filter := projectedExercises(t, p).(bson.M)["$filter"].(bson.M)
	conds := filter["cond"].(bson.M)["$and"].(bson.A)
	if len(conds) != 1 {
		t.Fatalf("len(conds) = %d, want 1", len(conds))
	}
}

func TestLogPipelineLimitWrapsFilter(t *testing.T) {
	from := time.Date(2020, time.January, 5, 0, 0, 0, 0, time.UTC)
	p := logPipeline(primitive.NewObjectID(), models.LogFilter{From: from, Limit: 1})

	slice := projectedExercises(t, p).(bson.M)["$slice"].(bson.A)
	if slice[1] != 1 {
		t.Errorf("slice cap = %v, want 1", slice[1])
	}
	if _, ok := slice[0].(bson.M)["$filter"]; !ok {
		t.Error("slice input is not the filtered exercise list")
	}
}

func TestLogPipelineLimitWithoutBounds(t *testing.T) {
	p := logPipeline(primitive.NewObjectID(), models.LogFilter{Limit: 2})

	slice := projectedExercises(t, p).(bson.M)["$slice"].(bson.A)
	if slice[0] != "$exercises" {
		t.Errorf("slice input = %v, want $exercises", slice[0])
	}
	if slice[1] != 2 {
		t.Errorf("slice cap = %v, want 2", slice[1])
	}
}
