package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/dragdrop"
	"github.com/mmynk/classboard/internal/export"
	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/internal/persist"
	"github.com/mmynk/classboard/pkg/api"
	"github.com/mmynk/classboard/pkg/api/apiconnect"
)

var _ apiconnect.BoardServiceHandler = (*BoardService)(nil)

const (
	projectContentType  = "application/json"
	workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ErrAnalysisBusy is returned when an analysis is already running.
var ErrAnalysisBusy = errors.New("an analysis is already in progress")

// BoardService implements the Connect BoardService over a single board.
// Calls are serialized; the board itself is not safe for concurrent use.
type BoardService struct {
	mu       sync.Mutex
	board    *board.Board
	notices  *board.NoticeLog
	projects *persist.Projects
	now      func() time.Time

	// adjust is the group-count gesture in progress, if any. Any other
	// mutation ends it.
	adjust *board.GroupCountAdjuster
}

// NewBoardService creates a BoardService. notices must be the Notifier the
// board was built with. projects may be nil to disable archived projects.
func NewBoardService(b *board.Board, notices *board.NoticeLog, projects *persist.Projects) *BoardService {
	return &BoardService{
		board:    b,
		notices:  notices,
		projects: projects,
		now:      time.Now,
	}
}

// lockMutation takes s.mu for a mutating call and ends any group-count
// gesture, so later slider ticks cannot fold into an unrelated history entry.
func (s *BoardService) lockMutation() {
	s.mu.Lock()
	s.adjust = nil
}

// view must be called with s.mu held.
func (s *BoardService) view(createdID string) *connect.Response[api.BoardView] {
	notices := s.notices.Drain()
	if notices == nil {
		notices = []board.Notice{}
	}
	return connect.NewResponse(&api.BoardView{
		State:      s.board.State(),
		Evaluation: s.board.Evaluate(),
		CanUndo:    s.board.CanUndo(),
		CanRedo:    s.board.CanRedo(),
		Notices:    notices,
		CreatedID:  createdID,
	})
}

// fail converts a board error and discards the notice it produced, since the
// error already carries the message.
func (s *BoardService) fail(op string, err error) error {
	s.notices.Drain()
	code := errorCode(err)
	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	}
	return connect.NewError(code, err)
}

func errorCode(err error) connect.Code {
	switch {
	case errors.Is(err, board.ErrCancelled):
		return connect.CodeFailedPrecondition
	case errors.Is(err, board.ErrPersonNotFound),
		errors.Is(err, board.ErrLabelNotFound),
		errors.Is(err, board.ErrRuleNotFound):
		return connect.CodeNotFound
	case errors.Is(err, board.ErrBlankName),
		errors.Is(err, board.ErrDuplicateLabel),
		errors.Is(err, board.ErrTooFewMembers),
		errors.Is(err, board.ErrInvalidGroup),
		errors.Is(err, board.ErrUnknownCapacityClass),
		errors.Is(err, persist.ErrInvalidProject):
		return connect.CodeInvalidArgument
	case errors.Is(err, ErrAnalysisBusy):
		return connect.CodeResourceExhausted
	}
	return connect.CodeInternal
}

// GetBoard returns the current board.
func (s *BoardService) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.BoardView], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(""), nil
}

// AddPerson adds a person to the holding area.
func (s *BoardService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	p, err := s.board.AddPerson(ctx, req.Msg.Name, req.Msg.Gender, req.Msg.LabelIDs)
	if err != nil {
		return nil, s.fail("AddPerson", err)
	}
	return s.view(p.ID), nil
}

// EditPerson replaces a person's name, gender and labels.
func (s *BoardService) EditPerson(ctx context.Context, req *connect.Request[api.EditPersonRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	if err := s.board.EditPerson(ctx, req.Msg.ID, req.Msg.Name, req.Msg.Gender, req.Msg.LabelIDs); err != nil {
		return nil, s.fail("EditPerson", err)
	}
	return s.view(""), nil
}

// DeletePerson removes a person and prunes the rules they belonged to.
func (s *BoardService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	ctx = board.WithConfirmation(ctx, req.Msg.Confirmed)
	if err := s.board.DeletePerson(ctx, req.Msg.ID); err != nil {
		return nil, s.fail("DeletePerson", err)
	}
	return s.view(""), nil
}

// MovePerson resolves a drop zone and moves the person there.
func (s *BoardService) MovePerson(ctx context.Context, req *connect.Request[api.MovePersonRequest]) (*connect.Response[api.BoardView], error) {
	group, err := dragdrop.ParseZone(req.Msg.Zone)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	s.lockMutation()
	defer s.mu.Unlock()

	if err := s.board.MovePerson(ctx, req.Msg.ID, group); err != nil {
		return nil, s.fail("MovePerson", err)
	}
	return s.view(""), nil
}

// AddLabel creates a label.
func (s *BoardService) AddLabel(ctx context.Context, req *connect.Request[api.AddLabelRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	l, err := s.board.AddLabel(ctx, req.Msg.Label)
	if err != nil {
		return nil, s.fail("AddLabel", err)
	}
	return s.view(l.ID), nil
}

// DeleteLabel removes a label from the board and from every person.
func (s *BoardService) DeleteLabel(ctx context.Context, req *connect.Request[api.DeleteLabelRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	ctx = board.WithConfirmation(ctx, req.Msg.Confirmed)
	if err := s.board.DeleteLabel(ctx, req.Msg.ID); err != nil {
		return nil, s.fail("DeleteLabel", err)
	}
	return s.view(""), nil
}

// CreateRule creates a separation rule.
func (s *BoardService) CreateRule(ctx context.Context, req *connect.Request[api.CreateRuleRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	r, err := s.board.CreateRule(ctx, req.Msg.MemberIDs)
	if err != nil {
		return nil, s.fail("CreateRule", err)
	}
	return s.view(r.ID), nil
}

// DeleteRule removes a separation rule.
func (s *BoardService) DeleteRule(ctx context.Context, req *connect.Request[api.DeleteRuleRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	if err := s.board.DeleteRule(ctx, req.Msg.ID); err != nil {
		return nil, s.fail("DeleteRule", err)
	}
	return s.view(""), nil
}

// SetCapacityClass switches the per-group capacity table entry.
func (s *BoardService) SetCapacityClass(ctx context.Context, req *connect.Request[api.SetCapacityClassRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	if err := s.board.SetCapacityClass(ctx, req.Msg.CapacityClass); err != nil {
		return nil, s.fail("SetCapacityClass", err)
	}
	return s.view(""), nil
}

// SetGroupCount sets the number of groups, clamped to the configured range.
func (s *BoardService) SetGroupCount(ctx context.Context, req *connect.Request[api.SetGroupCountRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	if err := s.board.SetGroupCount(ctx, req.Msg.GroupCount); err != nil {
		return nil, s.fail("SetGroupCount", err)
	}
	return s.view(""), nil
}

// BeginGroupCountAdjust starts a slider gesture. Ticks sent with
// AdjustGroupCount share one undo entry until a final tick or any other
// mutation ends the gesture.
func (s *BoardService) BeginGroupCountAdjust(ctx context.Context, req *connect.Request[api.BeginGroupCountAdjustRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	s.adjust = s.board.BeginGroupCountAdjust()
	return s.view(""), nil
}

// AdjustGroupCount applies one slider tick. A tick without a gesture in
// progress starts one.
func (s *BoardService) AdjustGroupCount(ctx context.Context, req *connect.Request[api.AdjustGroupCountRequest]) (*connect.Response[api.BoardView], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adjust == nil {
		s.adjust = s.board.BeginGroupCountAdjust()
	}
	n := s.adjust.Set(req.Msg.GroupCount)
	if req.Msg.Final {
		if s.adjust.Changed() {
			slog.Info("Group count changed", "group_count", n)
		}
		s.adjust = nil
	}
	return s.view(""), nil
}

// ImportProject validates a project document and replaces the board with it.
// An invalid document leaves the board untouched.
func (s *BoardService) ImportProject(ctx context.Context, req *connect.Request[api.ImportProjectRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	state, err := persist.DecodeProject(bytes.NewReader(req.Msg.Data), s.defaults())
	if err != nil {
		slog.Warn("ImportProject rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return s.replace(ctx, "ImportProject", state, req.Msg.Confirmed)
}

func (s *BoardService) replace(ctx context.Context, op string, state models.AppState, confirmed bool) (*connect.Response[api.BoardView], error) {
	ctx = board.WithConfirmation(ctx, confirmed)
	if err := s.board.ReplaceAll(ctx, state); err != nil {
		return nil, s.fail(op, err)
	}
	slog.Info("Board replaced", "op", op, "people_count", len(state.People))
	return s.view(""), nil
}

func (s *BoardService) defaults() models.Settings {
	limits := s.board.Limits()
	return models.Settings{CapacityClass: limits.DefaultCapacityClass, GroupCount: limits.DefaultGroups}
}

// LoadSample replaces the board with sample people.
func (s *BoardService) LoadSample(ctx context.Context, req *connect.Request[api.LoadSampleRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	ctx = board.WithConfirmation(ctx, req.Msg.Confirmed)
	if err := s.board.LoadSample(ctx); err != nil {
		return nil, s.fail("LoadSample", err)
	}
	return s.view(""), nil
}

// Reset returns the board to its defaults. It can be undone.
func (s *BoardService) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()

	ctx = board.WithConfirmation(ctx, req.Msg.Confirmed)
	if err := s.board.ResetAll(ctx); err != nil {
		return nil, s.fail("Reset", err)
	}
	return s.view(""), nil
}

// Undo steps back once. With nothing to undo it returns the board unchanged.
func (s *BoardService) Undo(ctx context.Context, req *connect.Request[api.UndoRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()
	s.board.Undo()
	return s.view(""), nil
}

// Redo steps forward once. With nothing to redo it returns the board unchanged.
func (s *BoardService) Redo(ctx context.Context, req *connect.Request[api.RedoRequest]) (*connect.Response[api.BoardView], error) {
	s.lockMutation()
	defer s.mu.Unlock()
	s.board.Redo()
	return s.view(""), nil
}

// RequestAnalysis starts a background analysis of the current board.
func (s *BoardService) RequestAnalysis(ctx context.Context, req *connect.Request[api.RequestAnalysisRequest]) (*connect.Response[api.AnalysisResponse], error) {
	s.mu.Lock()
	accepted := s.board.RequestAnalysis(ctx)
	s.mu.Unlock()

	if !accepted {
		return nil, connect.NewError(connect.CodeResourceExhausted, ErrAnalysisBusy)
	}
	slog.Info("Analysis requested")
	return connect.NewResponse(&api.AnalysisResponse{Status: s.board.Analysis()}), nil
}

// GetAnalysis polls the analysis status.
func (s *BoardService) GetAnalysis(ctx context.Context, req *connect.Request[api.GetAnalysisRequest]) (*connect.Response[api.AnalysisResponse], error) {
	return connect.NewResponse(&api.AnalysisResponse{Status: s.board.Analysis()}), nil
}

// ExportProject returns the board as a project document.
func (s *BoardService) ExportProject(ctx context.Context, req *connect.Request[api.ExportProjectRequest]) (*connect.Response[api.FileResponse], error) {
	s.mu.Lock()
	state := s.board.State()
	s.mu.Unlock()

	now := s.now()
	var buf bytes.Buffer
	if err := persist.EncodeProject(&buf, state); err != nil {
		slog.Error("ExportProject failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if req.Msg.Archive && s.projects != nil {
		name, err := s.projects.Save(state, now)
		if err != nil {
			slog.Error("Failed to archive project", "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		slog.Info("Project archived", "name", name)
	}

	return connect.NewResponse(&api.FileResponse{
		FileName:    persist.ProjectFileName(now),
		ContentType: projectContentType,
		Data:        buf.Bytes(),
	}), nil
}

// ExportWorkbook renders the board as a spreadsheet.
func (s *BoardService) ExportWorkbook(ctx context.Context, req *connect.Request[api.ExportWorkbookRequest]) (*connect.Response[api.FileResponse], error) {
	s.mu.Lock()
	state := s.board.State()
	locale := s.board.Locale()
	s.mu.Unlock()

	in := export.InputFromState(state, req.Msg.IncludeStats, nil, locale)
	if req.Msg.IncludeAnalysis {
		in.Analysis = s.board.Analysis().Result
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, in); err != nil {
		slog.Error("ExportWorkbook failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.FileResponse{
		FileName:    export.FileName(s.now()),
		ContentType: workbookContentType,
		Data:        buf.Bytes(),
	}), nil
}

// ListProjects lists archived projects, newest first.
func (s *BoardService) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	if s.projects == nil {
		return connect.NewResponse(&api.ListProjectsResponse{Names: []string{}}), nil
	}
	names, err := s.projects.List()
	if err != nil {
		slog.Error("ListProjects failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if names == nil {
		names = []string{}
	}
	return connect.NewResponse(&api.ListProjectsResponse{Names: names}), nil
}

// OpenProject replaces the board with an archived project.
func (s *BoardService) OpenProject(ctx context.Context, req *connect.Request[api.OpenProjectRequest]) (*connect.Response[api.BoardView], error) {
	if s.projects == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("project archive is not configured"))
	}
	state, err := s.projects.Open(req.Msg.Name)
	if err != nil {
		if errors.Is(err, persist.ErrInvalidProject) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	s.lockMutation()
	defer s.mu.Unlock()
	return s.replace(ctx, "OpenProject", state, req.Msg.Confirmed)
}
