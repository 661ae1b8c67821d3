// Package apiconnect wires classboard.v1.BoardService to Connect handlers
// and clients.
package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/classboard/pkg/api"
)

// BoardServiceName is the fully-qualified name of the service.
const BoardServiceName = "classboard.v1.BoardService"

// Procedure paths.
const (
	BoardServiceGetBoardProcedure              = "/" + BoardServiceName + "/GetBoard"
	BoardServiceAddPersonProcedure             = "/" + BoardServiceName + "/AddPerson"
	BoardServiceEditPersonProcedure            = "/" + BoardServiceName + "/EditPerson"
	BoardServiceDeletePersonProcedure          = "/" + BoardServiceName + "/DeletePerson"
	BoardServiceMovePersonProcedure            = "/" + BoardServiceName + "/MovePerson"
	BoardServiceAddLabelProcedure              = "/" + BoardServiceName + "/AddLabel"
	BoardServiceDeleteLabelProcedure           = "/" + BoardServiceName + "/DeleteLabel"
	BoardServiceCreateRuleProcedure            = "/" + BoardServiceName + "/CreateRule"
	BoardServiceDeleteRuleProcedure            = "/" + BoardServiceName + "/DeleteRule"
	BoardServiceSetCapacityClassProcedure      = "/" + BoardServiceName + "/SetCapacityClass"
	BoardServiceSetGroupCountProcedure         = "/" + BoardServiceName + "/SetGroupCount"
	BoardServiceBeginGroupCountAdjustProcedure = "/" + BoardServiceName + "/BeginGroupCountAdjust"
	BoardServiceAdjustGroupCountProcedure      = "/" + BoardServiceName + "/AdjustGroupCount"
	BoardServiceImportProjectProcedure         = "/" + BoardServiceName + "/ImportProject"
	BoardServiceLoadSampleProcedure            = "/" + BoardServiceName + "/LoadSample"
	BoardServiceResetProcedure                 = "/" + BoardServiceName + "/Reset"
	BoardServiceUndoProcedure                  = "/" + BoardServiceName + "/Undo"
	BoardServiceRedoProcedure                  = "/" + BoardServiceName + "/Redo"
	BoardServiceRequestAnalysisProcedure       = "/" + BoardServiceName + "/RequestAnalysis"
	BoardServiceGetAnalysisProcedure           = "/" + BoardServiceName + "/GetAnalysis"
	BoardServiceExportProjectProcedure         = "/" + BoardServiceName + "/ExportProject"
	BoardServiceExportWorkbookProcedure        = "/" + BoardServiceName + "/ExportWorkbook"
	BoardServiceListProjectsProcedure          = "/" + BoardServiceName + "/ListProjects"
	BoardServiceOpenProjectProcedure           = "/" + BoardServiceName + "/OpenProject"
)

// BoardServiceHandler is implemented by the server.
type BoardServiceHandler interface {
	GetBoard(context.Context, *connect.Request[api.GetBoardRequest]) (*connect.Response[api.BoardView], error)
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.BoardView], error)
	EditPerson(context.Context, *connect.Request[api.EditPersonRequest]) (*connect.Response[api.BoardView], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.BoardView], error)
	MovePerson(context.Context, *connect.Request[api.MovePersonRequest]) (*connect.Response[api.BoardView], error)
	AddLabel(context.Context, *connect.Request[api.AddLabelRequest]) (*connect.Response[api.BoardView], error)
	DeleteLabel(context.Context, *connect.Request[api.DeleteLabelRequest]) (*connect.Response[api.BoardView], error)
	CreateRule(context.Context, *connect.Request[api.CreateRuleRequest]) (*connect.Response[api.BoardView], error)
	DeleteRule(context.Context, *connect.Request[api.DeleteRuleRequest]) (*connect.Response[api.BoardView], error)
	SetCapacityClass(context.Context, *connect.Request[api.SetCapacityClassRequest]) (*connect.Response[api.BoardView], error)
	SetGroupCount(context.Context, *connect.Request[api.SetGroupCountRequest]) (*connect.Response[api.BoardView], error)
	BeginGroupCountAdjust(context.Context, *connect.Request[api.BeginGroupCountAdjustRequest]) (*connect.Response[api.BoardView], error)
	AdjustGroupCount(context.Context, *connect.Request[api.AdjustGroupCountRequest]) (*connect.Response[api.BoardView], error)
	ImportProject(context.Context, *connect.Request[api.ImportProjectRequest]) (*connect.Response[api.BoardView], error)
	LoadSample(context.Context, *connect.Request[api.LoadSampleRequest]) (*connect.Response[api.BoardView], error)
	Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.BoardView], error)
	Undo(context.Context, *connect.Request[api.UndoRequest]) (*connect.Response[api.BoardView], error)
	Redo(context.Context, *connect.Request[api.RedoRequest]) (*connect.Response[api.BoardView], error)
	RequestAnalysis(context.Context, *connect.Request[api.RequestAnalysisRequest]) (*connect.Response[api.AnalysisResponse], error)
	GetAnalysis(context.Context, *connect.Request[api.GetAnalysisRequest]) (*connect.Response[api.AnalysisResponse], error)
	ExportProject(context.Context, *connect.Request[api.ExportProjectRequest]) (*connect.Response[api.FileResponse], error)
	ExportWorkbook(context.Context, *connect.Request[api.ExportWorkbookRequest]) (*connect.Response[api.FileResponse], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
	OpenProject(context.Context, *connect.Request[api.OpenProjectRequest]) (*connect.Response[api.BoardView], error)
}

// NewBoardServiceHandler builds an HTTP handler for every procedure and
// returns the path prefix to mount it on.
func NewBoardServiceHandler(svc BoardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(BoardServiceGetBoardProcedure, connect.NewUnaryHandler(BoardServiceGetBoardProcedure, svc.GetBoard, opts...))
	mux.Handle(BoardServiceAddPersonProcedure, connect.NewUnaryHandler(BoardServiceAddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(BoardServiceEditPersonProcedure, connect.NewUnaryHandler(BoardServiceEditPersonProcedure, svc.EditPerson, opts...))
	mux.Handle(BoardServiceDeletePersonProcedure, connect.NewUnaryHandler(BoardServiceDeletePersonProcedure, svc.DeletePerson, opts...))
	mux.Handle(BoardServiceMovePersonProcedure, connect.NewUnaryHandler(BoardServiceMovePersonProcedure, svc.MovePerson, opts...))
	mux.Handle(BoardServiceAddLabelProcedure, connect.NewUnaryHandler(BoardServiceAddLabelProcedure, svc.AddLabel, opts...))
	mux.Handle(BoardServiceDeleteLabelProcedure, connect.NewUnaryHandler(BoardServiceDeleteLabelProcedure, svc.DeleteLabel, opts...))
	mux.Handle(BoardServiceCreateRuleProcedure, connect.NewUnaryHandler(BoardServiceCreateRuleProcedure, svc.CreateRule, opts...))
	mux.Handle(BoardServiceDeleteRuleProcedure, connect.NewUnaryHandler(BoardServiceDeleteRuleProcedure, svc.DeleteRule, opts...))
	mux.Handle(BoardServiceSetCapacityClassProcedure, connect.NewUnaryHandler(BoardServiceSetCapacityClassProcedure, svc.SetCapacityClass, opts...))
	mux.Handle(BoardServiceSetGroupCountProcedure, connect.NewUnaryHandler(BoardServiceSetGroupCountProcedure, svc.SetGroupCount, opts...))
	mux.Handle(BoardServiceBeginGroupCountAdjustProcedure, connect.NewUnaryHandler(BoardServiceBeginGroupCountAdjustProcedure, svc.BeginGroupCountAdjust, opts...))
	mux.Handle(BoardServiceAdjustGroupCountProcedure, connect.NewUnaryHandler(BoardServiceAdjustGroupCountProcedure, svc.AdjustGroupCount, opts...))
	mux.Handle(BoardServiceImportProjectProcedure, connect.NewUnaryHandler(BoardServiceImportProjectProcedure, svc.ImportProject, opts...))
	mux.Handle(BoardServiceLoadSampleProcedure, connect.NewUnaryHandler(BoardServiceLoadSampleProcedure, svc.LoadSample, opts...))
	mux.Handle(BoardServiceResetProcedure, connect.NewUnaryHandler(BoardServiceResetProcedure, svc.Reset, opts...))
	mux.Handle(BoardServiceUndoProcedure, connect.NewUnaryHandler(BoardServiceUndoProcedure, svc.Undo, opts...))
	mux.Handle(BoardServiceRedoProcedure, connect.NewUnaryHandler(BoardServiceRedoProcedure, svc.Redo, opts...))
	mux.Handle(BoardServiceRequestAnalysisProcedure, connect.NewUnaryHandler(BoardServiceRequestAnalysisProcedure, svc.RequestAnalysis, opts...))
	mux.Handle(BoardServiceGetAnalysisProcedure, connect.NewUnaryHandler(BoardServiceGetAnalysisProcedure, svc.GetAnalysis, opts...))
	mux.Handle(BoardServiceExportProjectProcedure, connect.NewUnaryHandler(BoardServiceExportProjectProcedure, svc.ExportProject, opts...))
	mux.Handle(BoardServiceExportWorkbookProcedure, connect.NewUnaryHandler(BoardServiceExportWorkbookProcedure, svc.ExportWorkbook, opts...))
	mux.Handle(BoardServiceListProjectsProcedure, connect.NewUnaryHandler(BoardServiceListProjectsProcedure, svc.ListProjects, opts...))
	mux.Handle(BoardServiceOpenProjectProcedure, connect.NewUnaryHandler(BoardServiceOpenProjectProcedure, svc.OpenProject, opts...))
	return "/" + BoardServiceName + "/", mux
}

// BoardServiceClient calls a remote BoardService.
type BoardServiceClient struct {
	getBoard              *connect.Client[api.GetBoardRequest, api.BoardView]
	addPerson             *connect.Client[api.AddPersonRequest, api.BoardView]
	editPerson            *connect.Client[api.EditPersonRequest, api.BoardView]
	deletePerson          *connect.Client[api.DeletePersonRequest, api.BoardView]
	movePerson            *connect.Client[api.MovePersonRequest, api.BoardView]
	addLabel              *connect.Client[api.AddLabelRequest, api.BoardView]
	deleteLabel           *connect.Client[api.DeleteLabelRequest, api.BoardView]
	createRule            *connect.Client[api.CreateRuleRequest, api.BoardView]
	deleteRule            *connect.Client[api.DeleteRuleRequest, api.BoardView]
	setCapacityClass      *connect.Client[api.SetCapacityClassRequest, api.BoardView]
	setGroupCount         *connect.Client[api.SetGroupCountRequest, api.BoardView]
	beginGroupCountAdjust *connect.Client[api.BeginGroupCountAdjustRequest, api.BoardView]
	adjustGroupCount      *connect.Client[api.AdjustGroupCountRequest, api.BoardView]
	importProject         *connect.Client[api.ImportProjectRequest, api.BoardView]
	loadSample            *connect.Client[api.LoadSampleRequest, api.BoardView]
	reset                 *connect.Client[api.ResetRequest, api.BoardView]
	undo                  *connect.Client[api.UndoRequest, api.BoardView]
	redo                  *connect.Client[api.RedoRequest, api.BoardView]
	requestAnalysis       *connect.Client[api.RequestAnalysisRequest, api.AnalysisResponse]
	getAnalysis           *connect.Client[api.GetAnalysisRequest, api.AnalysisResponse]
	exportProject         *connect.Client[api.ExportProjectRequest, api.FileResponse]
	exportWorkbook        *connect.Client[api.ExportWorkbookRequest, api.FileResponse]
	listProjects          *connect.Client[api.ListProjectsRequest, api.ListProjectsResponse]
	openProject           *connect.Client[api.OpenProjectRequest, api.BoardView]
}

// NewBoardServiceClient creates a client for the service at baseURL.
func NewBoardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BoardServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &BoardServiceClient{
		getBoard:              connect.NewClient[api.GetBoardRequest, api.BoardView](httpClient, baseURL+BoardServiceGetBoardProcedure, opts...),
		addPerson:             connect.NewClient[api.AddPersonRequest, api.BoardView](httpClient, baseURL+BoardServiceAddPersonProcedure, opts...),
		editPerson:            connect.NewClient[api.EditPersonRequest, api.BoardView](httpClient, baseURL+BoardServiceEditPersonProcedure, opts...),
		deletePerson:          connect.NewClient[api.DeletePersonRequest, api.BoardView](httpClient, baseURL+BoardServiceDeletePersonProcedure, opts...),
		movePerson:            connect.NewClient[api.MovePersonRequest, api.BoardView](httpClient, baseURL+BoardServiceMovePersonProcedure, opts...),
		addLabel:              connect.NewClient[api.AddLabelRequest, api.BoardView](httpClient, baseURL+BoardServiceAddLabelProcedure, opts...),
		deleteLabel:           connect.NewClient[api.DeleteLabelRequest, api.BoardView](httpClient, baseURL+BoardServiceDeleteLabelProcedure, opts...),
		createRule:            connect.NewClient[api.CreateRuleRequest, api.BoardView](httpClient, baseURL+BoardServiceCreateRuleProcedure, opts...),
		deleteRule:            connect.NewClient[api.DeleteRuleRequest, api.BoardView](httpClient, baseURL+BoardServiceDeleteRuleProcedure, opts...),
		setCapacityClass:      connect.NewClient[api.SetCapacityClassRequest, api.BoardView](httpClient, baseURL+BoardServiceSetCapacityClassProcedure, opts...),
		setGroupCount:         connect.NewClient[api.SetGroupCountRequest, api.BoardView](httpClient, baseURL+BoardServiceSetGroupCountProcedure, opts...),
		beginGroupCountAdjust: connect.NewClient[api.BeginGroupCountAdjustRequest, api.BoardView](httpClient, baseURL+BoardServiceBeginGroupCountAdjustProcedure, opts...),
		adjustGroupCount:      connect.NewClient[api.AdjustGroupCountRequest, api.BoardView](httpClient, baseURL+BoardServiceAdjustGroupCountProcedure, opts...),
		importProject:         connect.NewClient[api.ImportProjectRequest, api.BoardView](httpClient, baseURL+BoardServiceImportProjectProcedure, opts...),
		loadSample:            connect.NewClient[api.LoadSampleRequest, api.BoardView](httpClient, baseURL+BoardServiceLoadSampleProcedure, opts...),
		reset:                 connect.NewClient[api.ResetRequest, api.BoardView](httpClient, baseURL+BoardServiceResetProcedure, opts...),
		undo:                  connect.NewClient[api.UndoRequest, api.BoardView](httpClient, baseURL+BoardServiceUndoProcedure, opts...),
		redo:                  connect.NewClient[api.RedoRequest, api.BoardView](httpClient, baseURL+BoardServiceRedoProcedure, opts...),
		requestAnalysis:       connect.NewClient[api.RequestAnalysisRequest, api.AnalysisResponse](httpClient, baseURL+BoardServiceRequestAnalysisProcedure, opts...),
		getAnalysis:           connect.NewClient[api.GetAnalysisRequest, api.AnalysisResponse](httpClient, baseURL+BoardServiceGetAnalysisProcedure, opts...),
		exportProject:         connect.NewClient[api.ExportProjectRequest, api.FileResponse](httpClient, baseURL+BoardServiceExportProjectProcedure, opts...),
		exportWorkbook:        connect.NewClient[api.ExportWorkbookRequest, api.FileResponse](httpClient, baseURL+BoardServiceExportWorkbookProcedure, opts...),
		listProjects:          connect.NewClient[api.ListProjectsRequest, api.ListProjectsResponse](httpClient, baseURL+BoardServiceListProjectsProcedure, opts...),
		openProject:           connect.NewClient[api.OpenProjectRequest, api.BoardView](httpClient, baseURL+BoardServiceOpenProjectProcedure, opts...),
	}
}

func (c *BoardServiceClient) GetBoard(ctx context.Context, req *connect.Request[api.GetBoardRequest]) (*connect.Response[api.BoardView], error) {
	return c.getBoard.CallUnary(ctx, req)
}

func (c *BoardServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.BoardView], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *BoardServiceClient) EditPerson(ctx context.Context, req *connect.Request[api.EditPersonRequest]) (*connect.Response[api.BoardView], error) {
	return c.editPerson.CallUnary(ctx, req)
}

func (c *BoardServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.BoardView], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

func (c *BoardServiceClient) MovePerson(ctx context.Context, req *connect.Request[api.MovePersonRequest]) (*connect.Response[api.BoardView], error) {
	return c.movePerson.CallUnary(ctx, req)
}

func (c *BoardServiceClient) AddLabel(ctx context.Context, req *connect.Request[api.AddLabelRequest]) (*connect.Response[api.BoardView], error) {
	return c.addLabel.CallUnary(ctx, req)
}

func (c *BoardServiceClient) DeleteLabel(ctx context.Context, req *connect.Request[api.DeleteLabelRequest]) (*connect.Response[api.BoardView], error) {
	return c.deleteLabel.CallUnary(ctx, req)
}

func (c *BoardServiceClient) CreateRule(ctx context.Context, req *connect.Request[api.CreateRuleRequest]) (*connect.Response[api.BoardView], error) {
	return c.createRule.CallUnary(ctx, req)
}

func (c *BoardServiceClient) DeleteRule(ctx context.Context, req *connect.Request[api.DeleteRuleRequest]) (*connect.Response[api.BoardView], error) {
	return c.deleteRule.CallUnary(ctx, req)
}

func (c *BoardServiceClient) SetCapacityClass(ctx context.Context, req *connect.Request[api.SetCapacityClassRequest]) (*connect.Response[api.BoardView], error) {
	return c.setCapacityClass.CallUnary(ctx, req)
}

func (c *BoardServiceClient) SetGroupCount(ctx context.Context, req *connect.Request[api.SetGroupCountRequest]) (*connect.Response[api.BoardView], error) {
	return c.setGroupCount.CallUnary(ctx, req)
}

func (c *BoardServiceClient) BeginGroupCountAdjust(ctx context.Context, req *connect.Request[api.BeginGroupCountAdjustRequest]) (*connect.Response[api.BoardView], error) {
	return c.beginGroupCountAdjust.CallUnary(ctx, req)
}

func (c *BoardServiceClient) AdjustGroupCount(ctx context.Context, req *connect.Request[api.AdjustGroupCountRequest]) (*connect.Response[api.BoardView], error) {
	return c.adjustGroupCount.CallUnary(ctx, req)
}

func (c *BoardServiceClient) ImportProject(ctx context.Context, req *connect.Request[api.ImportProjectRequest]) (*connect.Response[api.BoardView], error) {
	return c.importProject.CallUnary(ctx, req)
}

func (c *BoardServiceClient) LoadSample(ctx context.Context, req *connect.Request[api.LoadSampleRequest]) (*connect.Response[api.BoardView], error) {
	return c.loadSample.CallUnary(ctx, req)
}

func (c *BoardServiceClient) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.BoardView], error) {
	return c.reset.CallUnary(ctx, req)
}

func (c *BoardServiceClient) Undo(ctx context.Context, req *connect.Request[api.UndoRequest]) (*connect.Response[api.BoardView], error) {
	return c.undo.CallUnary(ctx, req)
}

func (c *BoardServiceClient) Redo(ctx context.Context, req *connect.Request[api.RedoRequest]) (*connect.Response[api.BoardView], error) {
	return c.redo.CallUnary(ctx, req)
}

func (c *BoardServiceClient) RequestAnalysis(ctx context.Context, req *connect.Request[api.RequestAnalysisRequest]) (*connect.Response[api.AnalysisResponse], error) {
	return c.requestAnalysis.CallUnary(ctx, req)
}

func (c *BoardServiceClient) GetAnalysis(ctx context.Context, req *connect.Request[api.GetAnalysisRequest]) (*connect.Response[api.AnalysisResponse], error) {
	return c.getAnalysis.CallUnary(ctx, req)
}

func (c *BoardServiceClient) ExportProject(ctx context.Context, req *connect.Request[api.ExportProjectRequest]) (*connect.Response[api.FileResponse], error) {
	return c.exportProject.CallUnary(ctx, req)
}

func (c *BoardServiceClient) ExportWorkbook(ctx context.Context, req *connect.Request[api.ExportWorkbookRequest]) (*connect.Response[api.FileResponse], error) {
	return c.exportWorkbook.CallUnary(ctx, req)
}

func (c *BoardServiceClient) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return c.listProjects.CallUnary(ctx, req)
}

func (c *BoardServiceClient) OpenProject(ctx context.Context, req *connect.Request[api.OpenProjectRequest]) (*connect.Response[api.BoardView], error) {
	return c.openProject.CallUnary(ctx, req)
}
