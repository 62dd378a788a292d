// Package flow drives the four questionnaire views as a small state machine.
// All transitions run synchronously in response to one user action and
// complete before the next action is processed.
package flow

import (
	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/basicinfo"
	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/review"
	"github.com/slam0615/sc2026/internal/schema"
)

// State is the active view. Exactly one is active at a time.
type State string

const (
	StateIntro         State = "intro"
	StateBasicInfo     State = "basic_info"
	StateQuestionnaire State = "questionnaire"
	StateResult        State = "result"
)

// Presenter is the rendering boundary. ViewChanged must not return until the
// new view has been rendered; the controller relies on that as a completion
// signal and calls FocusQuestion only afterwards, so the target element
// exists by the time it runs. There is no timer involved.
type Presenter interface {
	ViewChanged(s State)
	ShowMessage(title, body string)
	FocusQuestion(questionID int)
}

// Controller owns the session state: the two mutable stores, the active
// view, and the report of the last successful submission. It has no terminal
// state and can cycle between views indefinitely.
type Controller struct {
	cat       *catalog.Catalog
	presenter Presenter
	version   string

	info    *basicinfo.Store
	answers *answers.Store
	state   State
	report  *schema.Report
}

// New returns a controller on the intro view with empty stores.
func New(cat *catalog.Catalog, p Presenter, version string) *Controller {
	return &Controller{
		cat:       cat,
		presenter: p,
		version:   version,
		info:      basicinfo.New(),
		answers:   answers.New(),
		state:     StateIntro,
	}
}

// State returns the active view.
func (c *Controller) State() State { return c.state }

// Catalog returns the reference data the session runs on.
func (c *Controller) Catalog() *catalog.Catalog { return c.cat }

// Info returns the basic-info store for field edits and view rendering.
func (c *Controller) Info() *basicinfo.Store { return c.info }

// Answers returns the answer store for selections and view rendering.
func (c *Controller) Answers() *answers.Store { return c.answers }

// Report returns the report built by the last successful Submit, or nil.
func (c *Controller) Report() *schema.Report { return c.report }

// Start moves from the intro to the basic-info view.
func (c *Controller) Start() { c.setState(StateBasicInfo) }

// Next moves from the basic-info to the questionnaire view. There is no
// validation gate here; completeness is only checked on Submit.
func (c *Controller) Next() { c.setState(StateQuestionnaire) }

// Back moves from the questionnaire to the basic-info view.
func (c *Controller) Back() { c.setState(StateBasicInfo) }

// Jump activates any view directly. Tab navigation deliberately bypasses
// validation so users can inspect other sections mid-flow.
func (c *Controller) Jump(s State) { c.setState(s) }

// Submit validates the session. On failure it switches to the failing
// stage's view, surfaces the alert, and — for a missing answer — focuses the
// offending question after the view switch has completed. On success it
// builds the report and advances to the result view. Returns true when the
// submission went through.
func (c *Controller) Submit() bool {
	if in := review.Validate(c.info, c.answers, c.cat); in != nil {
		switch in.Stage {
		case review.StageBasicInfo:
			c.setState(StateBasicInfo)
			c.presenter.ShowMessage(in.Title(), in.Message())
		case review.StageQuestionnaire:
			// setState returns only after the questionnaire view has
			// rendered, so the question can be brought into view now.
			c.setState(StateQuestionnaire)
			c.presenter.ShowMessage(in.Title(), in.Message())
			c.presenter.FocusQuestion(in.QuestionID)
		}
		return false
	}

	c.report = review.Build(c.info, c.answers, c.cat, c.version)
	c.setState(StateResult)
	return true
}

func (c *Controller) setState(s State) {
	c.state = s
	c.presenter.ViewChanged(s)
}
