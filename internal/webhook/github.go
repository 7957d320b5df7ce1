package webhook

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	eventPush        = "push"
	eventPullRequest = "pull_request"

	actionOpened   = "opened"
	actionReopened = "reopened"
	actionClosed   = "closed"

	branchRefPrefix = "refs/heads/"
)

// pushPayload is the subset of a GitHub push delivery we read.
type pushPayload struct {
	Ref    string `json:"ref"`
	Pusher struct {
		Name string `json:"name"`
	} `json:"pusher"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
	HeadCommit *struct {
		Timestamp string `json:"timestamp"`
	} `json:"head_commit"`
}

// pullRequestPayload is the subset of a GitHub pull_request delivery we read.
type pullRequestPayload struct {
	Action      string `json:"action"`
	PullRequest *struct {
		User struct {
			Login string `json:"login"`
		} `json:"user"`
		Head struct {
			Ref string `json:"ref"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
		} `json:"base"`
		Merged    bool   `json:"merged"`
		MergedAt  string `json:"merged_at"`
		UpdatedAt string `json:"updated_at"`
		CreatedAt string `json:"created_at"`
	} `json:"pull_request"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
}

func decodePush(payload []byte) (pushPayload, error) {
	var p pushPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return p, fmt.Errorf("%w: push: %v", ErrMalformedPayload, err)
	}
	switch {
	case p.Ref == "":
		return p, fmt.Errorf("%w: ref", ErrMissingField)
	case p.Pusher.Name == "":
		return p, fmt.Errorf("%w: pusher.name", ErrMissingField)
	case p.Repository.FullName == "":
		return p, fmt.Errorf("%w: repository.full_name", ErrMissingField)
	}
	return p, nil
}

func decodePullRequest(payload []byte) (pullRequestPayload, error) {
	var p pullRequestPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return p, fmt.Errorf("%w: pull_request: %v", ErrMalformedPayload, err)
	}
	switch {
	case p.Action == "":
		return p, fmt.Errorf("%w: action", ErrMissingField)
	case p.PullRequest == nil:
		return p, fmt.Errorf("%w: pull_request", ErrMissingField)
	case p.PullRequest.User.Login == "":
		return p, fmt.Errorf("%w: pull_request.user.login", ErrMissingField)
	case p.PullRequest.Head.Ref == "":
		return p, fmt.Errorf("%w: pull_request.head.ref", ErrMissingField)
	case p.PullRequest.Base.Ref == "":
		return p, fmt.Errorf("%w: pull_request.base.ref", ErrMissingField)
	case p.Repository.FullName == "":
		return p, fmt.Errorf("%w: repository.full_name", ErrMissingField)
	}
	return p, nil
}

// branchFromRef maps refs/heads/x/y to y. Other refs are returned as-is.
func branchFromRef(ref string) string {
	if !strings.HasPrefix(ref, branchRefPrefix) {
		return ref
	}
	return ref[strings.LastIndex(ref, "/")+1:]
}

// parseTimestamp reads an ISO-8601 time, with or without offset, into UTC.
// A trailing Z is rewritten to +00:00 first; times without a zone are UTC.
// Event times are stored as nanoseconds since the epoch, which bounds the
// representable range to roughly 1677 through 2262.
var (
	minEventTime = time.Unix(0, math.MinInt64).UTC()
	maxEventTime = time.Unix(0, math.MaxInt64).UTC()
)

func parseTimestamp(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		var errLocal error
		t, errLocal = time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.UTC)
		if errLocal != nil {
			return time.Time{}, fmt.Errorf("%w: timestamp %q: %v", ErrMalformedPayload, s, err)
		}
	}
	if t.Before(minEventTime) || t.After(maxEventTime) {
		return time.Time{}, fmt.Errorf("%w: timestamp %q out of range", ErrMalformedPayload, s)
	}
	return t.UTC(), nil
}
