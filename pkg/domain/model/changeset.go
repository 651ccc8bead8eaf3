package model

import (
	"bytes"
	"encoding/json"
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// TagEntry is a tag of a repository branch
type TagEntry struct {
	Tag  string   `json:"tag"`
	Node string   `json:"node,omitempty"`
	Date PushDate `json:"date"`
}

// Push is a group of changesets pushed to a branch at once
type Push struct {
	ID         string      `json:"id"`
	User       string      `json:"user"`
	Date       PushDate    `json:"date"`
	Changesets []Changeset `json:"changesets"`
}

// Changeset is a single committed change
type Changeset struct {
	Node   string `json:"node,omitempty"`
	Author string `json:"author,omitempty"`
	Branch string `json:"branch,omitempty"`
	Desc   string `json:"desc"`
}

// PushDate is a timestamp reported either as unix seconds or as a [seconds, tz offset] pair
type PushDate struct {
	time.Time
}

// UnmarshalJSON accepts both `1493924330` and `[1493924330.0, 0]`
func (d *PushDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var seconds float64
	if len(data) > 0 && data[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return goerr.Wrap(err, "failed to decode date pair", goerr.V("date", string(data)))
		}
		if len(pair) == 0 {
			return goerr.New("empty date pair")
		}
		seconds = pair[0]
	} else if err := json.Unmarshal(data, &seconds); err != nil {
		return goerr.Wrap(err, "failed to decode date", goerr.V("date", string(data)))
	}

	sec, frac := math.Modf(seconds)
	d.Time = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	return nil
}

// MarshalJSON writes the timestamp as unix seconds
func (d PushDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Unix())
}
