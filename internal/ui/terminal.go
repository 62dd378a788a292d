// Package ui is the terminal front-end for an interactive questionnaire
// session. It implements the flow presenter boundary: views are redrawn when
// the controller reports a state change, and user input is translated into
// store edits and flow actions.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/slam0615/sc2026/internal/catalog"
	"github.com/slam0615/sc2026/internal/flow"
	"github.com/slam0615/sc2026/internal/render"
	"github.com/slam0615/sc2026/internal/schema"
)

// Terminal renders views to out and reads commands from in.
type Terminal struct {
	out  io.Writer
	cat  *catalog.Catalog
	ctrl *flow.Controller
}

// Run drives one interactive session until the input ends or the user quits.
func Run(in io.Reader, out io.Writer, cat *catalog.Catalog, version string) error {
	t := &Terminal{out: out, cat: cat}
	t.ctrl = flow.New(cat, t, version)

	// The controller only notifies on transitions; draw the initial view.
	t.ViewChanged(t.ctrl.State())

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 64*1024)
	t.prompt()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line != "" {
			t.handle(line)
		}
		t.prompt()
	}
	return sc.Err()
}

// --- flow.Presenter ---

// ViewChanged redraws the newly active view before returning.
func (t *Terminal) ViewChanged(s flow.State) {
	fmt.Fprintln(t.out)
	switch s {
	case flow.StateIntro:
		t.drawIntro()
	case flow.StateBasicInfo:
		t.drawBasicInfo()
	case flow.StateQuestionnaire:
		t.drawQuestionnaire()
	case flow.StateResult:
		t.drawResult()
	}
}

// ShowMessage surfaces a validation alert.
func (t *Terminal) ShowMessage(title, body string) {
	fmt.Fprintf(t.out, "\n⚠ %s：%s\n", title, body)
}

// FocusQuestion points at the offending question. The questionnaire view has
// already been redrawn when this runs.
func (t *Terminal) FocusQuestion(questionID int) {
	fmt.Fprintf(t.out, "→ 請先完成第 %d 題\n", questionID)
}

// --- command handling ---

func (t *Terminal) prompt() {
	fmt.Fprintf(t.out, "[%s] > ", tabLabel(t.ctrl.State()))
}

func (t *Terminal) handle(line string) {
	fields := strings.Fields(line)
	cmd := fields[0]

	// Tab navigation is always available and bypasses validation.
	if cmd == "tab" && len(fields) == 2 {
		if s, ok := parseTab(fields[1]); ok {
			t.ctrl.Jump(s)
		} else {
			fmt.Fprintf(t.out, "無此頁籤：%s（可用：intro basic questions result）\n", fields[1])
		}
		return
	}

	switch t.ctrl.State() {
	case flow.StateIntro:
		if cmd == "start" {
			t.ctrl.Start()
			return
		}
	case flow.StateBasicInfo:
		switch cmd {
		case "set":
			t.handleSet(line)
			return
		case "next":
			t.ctrl.Next()
			return
		}
	case flow.StateQuestionnaire:
		switch cmd {
		case "back":
			t.ctrl.Back()
			return
		case "submit":
			t.ctrl.Submit()
			return
		default:
			if t.handleAnswer(fields) {
				return
			}
		}
	case flow.StateResult:
		if cmd == "save" && len(fields) >= 2 {
			t.handleSave(fields[1:])
			return
		}
	}

	fmt.Fprintf(t.out, "無法辨識的指令：%s\n", line)
}

// handleSet applies `set <field> <value…>` to the basic-info store.
func (t *Terminal) handleSet(line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "set"))
	name, value, _ := strings.Cut(rest, " ")
	if name == "" {
		fmt.Fprintln(t.out, "用法：set <欄位> <值>")
		return
	}
	if err := t.ctrl.Info().Set(name, strings.TrimSpace(value)); err != nil {
		fmt.Fprintf(t.out, "欄位更新失敗：%v\n", err)
		return
	}
	info := t.ctrl.Info().Info()
	if name == "employeesMale" || name == "employeesFemale" {
		fmt.Fprintf(t.out, "已更新，單位規模：%s\n", info.Scale)
		return
	}
	fmt.Fprintln(t.out, "已更新")
}

// handleAnswer records `<id> y|n` selections.
func (t *Terminal) handleAnswer(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return false
	}
	var yes bool
	switch fields[1] {
	case "y", "yes", "是":
		yes = true
	case "n", "no", "否":
		yes = false
	default:
		return false
	}
	t.ctrl.Answers().Set(id, yes)
	fmt.Fprintf(t.out, "第 %d 題：%s（已作答 %d/%d）\n",
		id, answerLabel(t.ctrl.Answers().Get(id)), t.ctrl.Answers().Answered(), len(t.cat.Questions))
	return true
}

// handleSave writes the result report to a file. The optional second
// argument selects the format; html produces the printable page.
func (t *Terminal) handleSave(args []string) {
	format := "md"
	if len(args) >= 2 {
		format = args[1]
	}
	renderer, err := render.NewRenderer(format)
	if err != nil {
		fmt.Fprintf(t.out, "%v\n", err)
		return
	}
	out, err := renderer.Render(t.ctrl.Report())
	if err != nil {
		fmt.Fprintf(t.out, "輸出失敗：%v\n", err)
		return
	}
	if err := os.WriteFile(args[0], out, 0o644); err != nil {
		fmt.Fprintf(t.out, "寫入失敗：%v\n", err)
		return
	}
	fmt.Fprintf(t.out, "已儲存：%s\n", args[0])
}

// --- views ---

func (t *Terminal) drawIntro() {
	fmt.Fprintln(t.out, "═══ 職場健康促進表現計分表 ═══")
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.cat.Intro)
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, "輸入 start 開始填寫；隨時可輸入 tab <頁籤> 切換、quit 離開。")
}

func (t *Terminal) drawBasicInfo() {
	info := t.ctrl.Info().Info()
	fmt.Fprintln(t.out, "─── 基本資料 ───")
	rows := []struct{ label, field, value string }{
		{"單位名稱", "unitName", info.UnitName},
		{"統一編號", "taxId", info.TaxID},
		{"縣市", "city", info.City},
		{"區鄉鎮", "district", info.District},
		{"單位類別", "unitType", info.UnitType},
		{"行業別", "industry", info.Industry},
		{"男性員工數", "employeesMale", strconv.Itoa(info.EmployeesMale)},
		{"女性員工數", "employeesFemale", strconv.Itoa(info.EmployeesFemale)},
		{"單位規模（自動計算）", "", string(info.Scale)},
		{"聯絡人姓名", "contactName", info.ContactName},
		{"聯絡人電話", "contactPhone", info.ContactPhone},
		{"聯絡人 E-mail", "contactEmail", info.ContactEmail},
	}
	for _, row := range rows {
		if row.field == "" {
			fmt.Fprintf(t.out, "  %s：%s\n", row.label, row.value)
			continue
		}
		fmt.Fprintf(t.out, "  %s（set %s …）：%s\n", row.label, row.field, row.value)
	}
	fmt.Fprintln(t.out, "填寫完成後輸入 next 進入問卷。")
}

func (t *Terminal) drawQuestionnaire() {
	fmt.Fprintln(t.out, "─── 問卷 ───")
	for _, part := range t.cat.Parts {
		fmt.Fprintf(t.out, "\n%s（%d 分）\n", part.Title, part.Points)
		for _, q := range t.cat.PartQuestions(part.ID) {
			fmt.Fprintf(t.out, "  [%s] %d. %s（配分 %d）\n",
				answerMark(t.ctrl.Answers().Get(q.ID)), q.ID, q.Text, q.Points)
			if q.Note != "" {
				fmt.Fprintf(t.out, "      ※ %s\n", q.Note)
			}
		}
	}
	fmt.Fprintln(t.out, "\n作答方式：<題號> y 或 <題號> n；back 回上一步；submit 送出計算。")
}

func (t *Terminal) drawResult() {
	report := t.ctrl.Report()
	if report == nil {
		fmt.Fprintln(t.out, "尚無結果，請先完成問卷並送出。")
		return
	}
	renderer, _ := render.NewRenderer("md")
	out, err := renderer.Render(report)
	if err != nil {
		fmt.Fprintf(t.out, "結果輸出失敗：%v\n", err)
		return
	}
	t.out.Write(out)
	fmt.Fprintln(t.out, "輸入 save <檔名> [md|html|json] 可儲存報告（html 為可列印版本）。")
}

// --- labels ---

func tabLabel(s flow.State) string {
	switch s {
	case flow.StateIntro:
		return "說明"
	case flow.StateBasicInfo:
		return "基本資料"
	case flow.StateQuestionnaire:
		return "問卷"
	case flow.StateResult:
		return "結果"
	}
	return string(s)
}

func parseTab(name string) (flow.State, bool) {
	switch name {
	case "intro":
		return flow.StateIntro, true
	case "basic":
		return flow.StateBasicInfo, true
	case "questions":
		return flow.StateQuestionnaire, true
	case "result":
		return flow.StateResult, true
	}
	return "", false
}

func answerMark(a schema.Answer) string {
	switch a {
	case schema.AnswerYes:
		return "是"
	case schema.AnswerNo:
		return "否"
	}
	return "　"
}

func answerLabel(a schema.Answer) string {
	switch a {
	case schema.AnswerYes:
		return "是"
	case schema.AnswerNo:
		return "否"
	}
	return "未作答"
}
