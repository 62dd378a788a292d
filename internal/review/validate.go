// Package review turns the session's stores into a submission decision and,
// on success, a scored result report.
package review

import (
	"fmt"
	"strings"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/basicinfo"
	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/schema"
)

// Stage identifies the view a validation failure is attributed to.
type Stage string

const (
	StageBasicInfo     Stage = "basic_info"
	StageQuestionnaire Stage = "questionnaire"
)

// Incomplete describes the first unmet submission requirement. QuestionID
// and Part are set only for StageQuestionnaire.
type Incomplete struct {
	Stage      Stage
	QuestionID int
	Part       int
}

// Title returns the alert heading for the failure.
func (in *Incomplete) Title() string {
	if in.Stage == StageBasicInfo {
		return "資料未完成"
	}
	return "問卷未完成"
}

// Message returns the user-facing alert body for the failure.
func (in *Incomplete) Message() string {
	if in.Stage == StageBasicInfo {
		return "請填寫單位名稱。"
	}
	return fmt.Sprintf("第%s大題的第%d題未完成", catalog.PartOrdinal(in.Part), in.QuestionID)
}

// Validate decides whether the submission may proceed. It returns nil when
// complete; otherwise it identifies exactly one unmet requirement, checked in
// strict priority order: the unit name first, then the first unanswered
// question in catalog order. When several questions are unanswered, the one
// earliest in the catalog wins regardless of ID or part.
func Validate(info *basicinfo.Store, ans *answers.Store, cat *catalog.Catalog) *Incomplete {
	if strings.TrimSpace(info.Info().UnitName) == "" {
		return &Incomplete{Stage: StageBasicInfo}
	}

	for _, q := range cat.Questions {
		if ans.Get(q.ID) == schema.AnswerUnanswered {
			return &Incomplete{
				Stage:      StageQuestionnaire,
				QuestionID: q.ID,
				Part:       q.Part,
			}
		}
	}

	return nil
}
