package runtime

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/fsnav/pkg/domain"
)

// NotARegularFileMessage is shown when show targets something that is not a readable file.
const NotARegularFileMessage = "The path does not refer to a valid file."

// transition is the single dispatch point of the state machine.
// Every operation is validated against the current state before a new state is computed.
func (e *Engine) transition(state domain.State, inv domain.Invocation) (domain.Result, error) {
	switch inv.Kind() {
	case domain.KindList:
		return e.list(state)
	case domain.KindShow:
		return e.show(state, inv)
	case domain.KindBack:
		return e.back(state)
	case domain.KindOpen:
		return e.open(state, inv)
	case domain.KindDetail:
		return e.detail(state, inv)
	case domain.KindExit:
		return e.exit(state)
	default:
		return domain.Result{}, domain.NewError(domain.CodeUnrecognizedCommand, domain.KindUnknown, inv.Keyword(), nil)
	}
}

func (e *Engine) list(state domain.State) (domain.Result, error) {
	if !e.storage.IsDir(state.Current()) {
		return domain.Result{}, domain.NewError(domain.CodeNotADirectory, domain.KindList, state.Current(), nil)
	}

	names, err := e.storage.ReadDir(state.Current())
	if err != nil {
		// Best effort: whatever was read is still listed.
		e.logger.Warn("directory listing incomplete", "path", state.Current(), "read", len(names), "err", err)
	}

	actions := make([]domain.ActionRequest, 0, len(names)+1)
	actions = append(actions, domain.Line("Contents of "+state.Current()))
	for _, name := range names {
		actions = append(actions, domain.Line(name))
	}
	return domain.Result{State: state, Actions: actions}, nil
}

func (e *Engine) show(state domain.State, inv domain.Invocation) (domain.Result, error) {
	target, err := e.resolve(state, inv)
	if err != nil {
		return domain.Result{}, err
	}

	if e.storage.IsDir(target) {
		return domain.Result{}, domain.NewError(domain.CodeIsADirectory, domain.KindShow, target, nil)
	}
	if e.isExcluded(target) {
		return domain.Result{}, domain.NewError(domain.CodeUnsupportedExtension, domain.KindShow, target, nil)
	}

	lines, ok := e.storage.Lines(target)
	if !ok {
		return domain.Result{State: state, Actions: []domain.ActionRequest{domain.SystemMessage(NotARegularFileMessage)}}, nil
	}
	return domain.Result{
		State: state,
		Actions: []domain.ActionRequest{{
			Type:    domain.ActionRenderLines,
			Payload: domain.LineSource{Path: target, Lines: lines},
		}},
	}, nil
}

func (e *Engine) back(state domain.State) (domain.Result, error) {
	if state.AtRoot() {
		return domain.Result{}, domain.NewError(domain.CodeAtRoot, domain.KindBack, state.Current(), nil)
	}
	return domain.Result{State: state.With(state.Parent())}, nil
}

func (e *Engine) open(state domain.State, inv domain.Invocation) (domain.Result, error) {
	target, err := e.resolve(state, inv)
	if err != nil {
		return domain.Result{}, err
	}
	if !e.storage.IsDir(target) {
		return domain.Result{}, domain.NewError(domain.CodeNotADirectory, domain.KindOpen, target, nil)
	}
	return domain.Result{State: state.With(target)}, nil
}

func (e *Engine) detail(state domain.State, inv domain.Invocation) (domain.Result, error) {
	target, err := e.resolve(state, inv)
	if err != nil {
		return domain.Result{}, err
	}

	attrs, err := e.storage.Attributes(target)
	if err != nil {
		return domain.Result{}, domain.NewError(domain.CodeAttributesUnavailable, domain.KindDetail, target, err)
	}

	return domain.Result{
		State: state,
		Actions: []domain.ActionRequest{
			domain.Line(fmt.Sprintf("Is directory [%s]", strconv.FormatBool(attrs.IsDir))),
			domain.Line(fmt.Sprintf("Size [%d]", attrs.Size)),
			domain.Line(fmt.Sprintf("Created on [%s]", domain.FormatTime(attrs.Created))),
			domain.Line(fmt.Sprintf("Last access time [%s]", domain.FormatTime(attrs.Accessed))),
		},
	}, nil
}

func (e *Engine) exit(state domain.State) (domain.Result, error) {
	return domain.Result{
		State:   state,
		Actions: []domain.ActionRequest{domain.Line(e.farewell)},
		Stop:    true,
	}, nil
}

// resolve joins the operand onto the current directory and rejects names
// that leave the root.
func (e *Engine) resolve(state domain.State, inv domain.Invocation) (string, error) {
	name, ok := inv.Operand()
	if !ok {
		return "", domain.NewError(domain.CodeMissingArgument, inv.Kind(), "", nil)
	}
	target := state.Resolve(name)
	if !state.Contains(target) {
		return "", domain.NewError(domain.CodeOutsideRoot, inv.Kind(), name, nil)
	}
	return target, nil
}

func (e *Engine) isExcluded(path string) bool {
	name := filepath.Base(path)
	for _, ext := range e.excluded {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
