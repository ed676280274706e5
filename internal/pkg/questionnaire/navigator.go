package questionnaire

import (
	"fmt"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
)

const minimumCounterGroups = 2

// GroupInfo describes the active wizard step. Enabled is false when the
// questionnaire is not made of top-level groups only.
type GroupInfo struct {
	Enabled      bool                        `json:"enabled"`
	CurrentGroup *fhir_dto.QuestionnaireItem `json:"-"`
	GroupIndex   int                         `json:"group_index"`
	GroupsCount  int                         `json:"groups_count"`
}

func IsPureGroup(q *fhir_dto.Questionnaire) bool {
	if q == nil || len(q.Item) == 0 {
		return false
	}
	for _, item := range q.Item {
		if item.Type != constvars.ItemTypeGroup {
			return false
		}
	}
	return true
}

// GroupInfoFor picks the active group. Without a saved response the first
// group is active and any override is ignored. Otherwise an override wins
// over the first incomplete group, which falls back to the last one.
func GroupInfoFor(q *fhir_dto.Questionnaire, response *fhir_dto.QuestionnaireResponse, override *int) GroupInfo {
	if !IsPureGroup(q) {
		return GroupInfo{}
	}

	count := len(q.Item)
	index := 0
	switch {
	case response == nil:
	case override != nil:
		index = clamp(*override, 0, count-1)
	default:
		index = firstIncompleteGroup(q.Item, response.Item)
	}

	return GroupInfo{
		Enabled:      true,
		CurrentGroup: &q.Item[index],
		GroupIndex:   index,
		GroupsCount:  count,
	}
}

func firstIncompleteGroup(groups []fhir_dto.QuestionnaireItem, responseItems []fhir_dto.QuestionnaireResponseItem) int {
	answered := AnsweredLinkIDs(responseItems)

	for i, group := range groups {
		questions := FlattenQuestions(group.Item)

		hasRequired := false
		allRequiredAnswered := true
		anyAnswered := false
		for _, question := range questions {
			if answered[question.LinkID] {
				anyAnswered = true
			}
			if question.Required {
				hasRequired = true
				if !answered[question.LinkID] {
					allRequiredAnswered = false
				}
			}
		}

		if hasRequired && !allRequiredAnswered {
			return i
		}
		if !hasRequired && !anyAnswered {
			return i
		}
	}
	return len(groups) - 1
}

func Previous(index int) int {
	return max(index-1, 0)
}

func Next(index, count int) int {
	if count <= 0 {
		return 0
	}
	return min(index+1, count-1)
}

// Counter renders "current of total" for wizards with at least two groups.
func Counter(current, total int) string {
	if current <= 0 || total < minimumCounterGroups {
		return ""
	}
	return fmt.Sprintf("%d of %d", current, total)
}

func clamp(value, lower, upper int) int {
	return max(lower, min(value, upper))
}
