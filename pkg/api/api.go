// Package api defines the request and response messages of
// classboard.v1.BoardService. Messages travel as JSON.
package api

import (
	"encoding/json"

	"github.com/mmynk/classboard/internal/analysis"
	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/constraints"
	"github.com/mmynk/classboard/internal/models"
)

// BoardView is returned by GetBoard and by every mutating call.
type BoardView struct {
	State      models.AppState    `json:"state"`
	Evaluation constraints.Report `json:"evaluation"`
	CanUndo    bool               `json:"canUndo"`
	CanRedo    bool               `json:"canRedo"`

	// Notices collected since the previous call.
	Notices []board.Notice `json:"notices"`

	// CreatedID is the id of the person, label or rule a call created.
	CreatedID string `json:"createdId,omitempty"`
}

type GetBoardRequest struct{}

type AddPersonRequest struct {
	Name     string        `json:"name"`
	Gender   models.Gender `json:"gender,omitempty"`
	LabelIDs []string      `json:"tagIds"`
}

type EditPersonRequest struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Gender   models.Gender `json:"gender,omitempty"`
	LabelIDs []string      `json:"tagIds"`
}

type DeletePersonRequest struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// MovePersonRequest moves a person to a drop zone: a group number, or ""
// or "unassigned" for the holding area.
type MovePersonRequest struct {
	ID   string `json:"id"`
	Zone string `json:"zone"`
}

type AddLabelRequest struct {
	Label string `json:"label"`
}

type DeleteLabelRequest struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

type CreateRuleRequest struct {
	MemberIDs []string `json:"studentIds"`
}

type DeleteRuleRequest struct {
	ID string `json:"id"`
}

type SetCapacityClassRequest struct {
	CapacityClass models.CapacityClass `json:"schoolLevel"`
}

type SetGroupCountRequest struct {
	GroupCount int `json:"classCount"`
}

// BeginGroupCountAdjustRequest starts a continuous group-count gesture such
// as a slider drag. The gesture records at most one undo entry.
type BeginGroupCountAdjustRequest struct{}

// AdjustGroupCountRequest applies an intermediate slider value. Final ends
// the gesture after applying GroupCount.
type AdjustGroupCountRequest struct {
	GroupCount int  `json:"classCount"`
	Final      bool `json:"final"`
}

// ImportProjectRequest replaces the whole board with a project document.
type ImportProjectRequest struct {
	Data      json.RawMessage `json:"data"`
	Confirmed bool            `json:"confirmed"`
}

type LoadSampleRequest struct {
	Confirmed bool `json:"confirmed"`
}

type ResetRequest struct {
	Confirmed bool `json:"confirmed"`
}

type UndoRequest struct{}

type RedoRequest struct{}

type RequestAnalysisRequest struct{}

type GetAnalysisRequest struct{}

type AnalysisResponse struct {
	Status analysis.Status `json:"status"`
}

type ExportProjectRequest struct {
	// Archive also keeps a copy in the server's project directory.
	Archive bool `json:"archive"`
}

type ExportWorkbookRequest struct {
	IncludeStats    bool `json:"includeStats"`
	IncludeAnalysis bool `json:"includeAnalysis"`
}

// FileResponse carries a downloadable file.
type FileResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

type ListProjectsRequest struct{}

type ListProjectsResponse struct {
	Names []string `json:"names"`
}

// OpenProjectRequest replaces the board with an archived project.
type OpenProjectRequest struct {
	Name      string `json:"name"`
	Confirmed bool   `json:"confirmed"`
}
