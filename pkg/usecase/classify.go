package usecase

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// testOnlyMarker is the approval flag of changes touching only tests
const testOnlyMarker = "a=test-only"

var (
	bugPattern     = regexp.MustCompile(`\bbug\s+(\d+)`)
	backoutPattern = regexp.MustCompile(`\b(?:back\s?out|backed\s+out|backing\s+out)`)
)

// Classify extracts the first bug referenced by each changeset and sorts it into regular or
// backout bugs. Test-only changesets and changesets without a bug reference are ignored.
func Classify(changesets []model.Changeset) (bugs, backouts model.BugSet) {
	bugs, backouts = model.NewBugSet(), model.NewBugSet()

	for _, cs := range changesets {
		if isTestOnlyChange(cs) {
			continue
		}

		desc := strings.ToLower(cs.Desc)
		m := bugPattern.FindStringSubmatch(desc)
		if m == nil {
			continue
		}

		if isBackout(desc) {
			backouts.Add(m[1])
		} else {
			bugs.Add(m[1])
		}
	}

	return bugs, backouts
}

// ClassifyPushes classifies every changeset of the pushes
func ClassifyPushes(pushes []model.Push) (bugs, backouts model.BugSet) {
	var changesets []model.Changeset
	for _, p := range pushes {
		changesets = append(changesets, p.Changesets...)
	}
	return Classify(changesets)
}

func isTestOnlyChange(cs model.Changeset) bool {
	return strings.Contains(cs.Desc, testOnlyMarker)
}

func isBackout(lowerDesc string) bool {
	return backoutPattern.MatchString(lowerDesc)
}
