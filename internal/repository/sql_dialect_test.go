package repository

import (
	"strings"
	"testing"
)

func TestBuildLikeConditionSQLite(t *testing.T) {
	condition, argCount := buildLikeCondition(nil, []string{"email", " ", "username"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	want := `LOWER(email) LIKE ? ESCAPE '\' OR LOWER(username) LIKE ? ESCAPE '\'`
	if condition != want {
		t.Fatalf("condition want %s got %s", want, condition)
	}
}

func TestBuildLikeConditionPostgres(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", []string{"name", "description"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if !strings.Contains(condition, `name ILIKE ? ESCAPE '\'`) || !strings.Contains(condition, `description ILIKE ? ESCAPE '\'`) {
		t.Fatalf("postgres condition should use ILIKE, got %s", condition)
	}
}

func TestLikePattern(t *testing.T) {
	if got := likePattern("sqlite", " TeCh "); got != "%tech%" {
		t.Fatalf("sqlite pattern want %%tech%% got %s", got)
	}
	if got := likePattern("postgres", "TeCh"); got != "%TeCh%" {
		t.Fatalf("postgres pattern want %%TeCh%% got %s", got)
	}
	if got := likePattern("sqlite", `50%_OFF\x`); got != `%50\%\_off\\x%` {
		t.Fatalf("wildcards should be escaped, got %s", got)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
