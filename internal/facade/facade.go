// Package facade is the typed surface the UI layer programs against. Each
// method wraps one named operation; the transport behind it is pluggable.
package facade

import (
	"context"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/handler"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

type Facade struct {
	inv Invoker
}

func New(inv Invoker) *Facade {
	return &Facade{inv: inv}
}

// --- Clients ---

func (f *Facade) GetClients(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	return out, f.inv.Invoke(ctx, dispatch.OpGetClients, nil, &out)
}

func (f *Facade) CreateClient(ctx context.Context, req handler.CreateClientReq) (*model.Client, error) {
	out := model.Client{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateClient, req, &out)
}

func (f *Facade) DeleteClient(ctx context.Context, id uint) error {
	return f.inv.Invoke(ctx, dispatch.OpDeleteClient, handler.ClientIDReq{ID: id}, nil)
}

func (f *Facade) GetClientFinancials(ctx context.Context, clientID uint) (float64, error) {
	out := handler.FinancialsRes{}
	err := f.inv.Invoke(ctx, dispatch.OpGetClientFinancials, handler.FinancialsReq{ClientID: clientID}, &out)
	return out.Total, err
}

func (f *Facade) GenerateContract(ctx context.Context, c model.Client) (*service.ContractResult, error) {
	out := service.ContractResult{}
	return &out, f.inv.Invoke(ctx, dispatch.OpGenerateContract, c, &out)
}

// --- Projects ---

func (f *Facade) GetProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	return out, f.inv.Invoke(ctx, dispatch.OpGetProjects, nil, &out)
}

// GetProject returns (nil, nil) when no project has the id.
func (f *Facade) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	var out *model.Project
	return out, f.inv.Invoke(ctx, dispatch.OpGetProject, handler.ProjectIDReq{ID: id}, &out)
}

func (f *Facade) CreateProject(ctx context.Context, req handler.CreateProjectReq) (*model.Project, error) {
	out := model.Project{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateProject, req, &out)
}

func (f *Facade) DeleteProject(ctx context.Context, id uint) error {
	return f.inv.Invoke(ctx, dispatch.OpDeleteProject, handler.ProjectIDReq{ID: id}, nil)
}

// --- Tasks ---

// GetTasks lists all tasks when projectID is nil.
func (f *Facade) GetTasks(ctx context.Context, projectID *uint) ([]model.ProjectTask, error) {
	var out []model.ProjectTask
	return out, f.inv.Invoke(ctx, dispatch.OpGetTasks, handler.GetTasksReq{ProjectID: projectID}, &out)
}

func (f *Facade) CreateTask(ctx context.Context, req handler.CreateTaskReq) (*model.ProjectTask, error) {
	out := model.ProjectTask{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateTask, req, &out)
}

func (f *Facade) UpdateTaskStatus(ctx context.Context, id uint, status string) (bool, error) {
	out := handler.SuccessRes{}
	err := f.inv.Invoke(ctx, dispatch.OpUpdateTaskStatus, handler.UpdateTaskStatusReq{ID: id, Status: status}, &out)
	return out.Success, err
}

func (f *Facade) DeleteTask(ctx context.Context, id uint) error {
	return f.inv.Invoke(ctx, dispatch.OpDeleteTask, handler.TaskIDReq{ID: id}, nil)
}

func (f *Facade) GetChecklist(ctx context.Context, taskID uint) ([]model.ChecklistItem, error) {
	var out []model.ChecklistItem
	return out, f.inv.Invoke(ctx, dispatch.OpGetChecklist, handler.GetChecklistReq{TaskID: taskID}, &out)
}

func (f *Facade) CreateChecklistItem(ctx context.Context, taskID uint, text string) (*model.ChecklistItem, error) {
	out := model.ChecklistItem{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateChecklistItem, handler.CreateChecklistItemReq{TaskID: taskID, Text: text}, &out)
}

func (f *Facade) ToggleChecklistItem(ctx context.Context, id uint, done bool) error {
	return f.inv.Invoke(ctx, dispatch.OpToggleChecklistItem, handler.ToggleChecklistItemReq{ID: id, IsCompleted: done}, nil)
}

// --- Finance ---

func (f *Facade) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	return out, f.inv.Invoke(ctx, dispatch.OpGetTransactions, nil, &out)
}

func (f *Facade) CreateTransaction(ctx context.Context, req handler.CreateTransactionReq) (*model.Transaction, error) {
	out := model.Transaction{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateTransaction, req, &out)
}

// --- Inventory ---

func (f *Facade) GetEquipment(ctx context.Context) ([]model.Equipment, error) {
	var out []model.Equipment
	return out, f.inv.Invoke(ctx, dispatch.OpGetEquipment, nil, &out)
}

func (f *Facade) CreateEquipment(ctx context.Context, req handler.CreateEquipmentReq) (*model.Equipment, error) {
	out := model.Equipment{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateEquipment, req, &out)
}

func (f *Facade) CheckoutEquipment(ctx context.Context, id, memberID uint) error {
	return f.inv.Invoke(ctx, dispatch.OpCheckoutEquipment, handler.CheckoutEquipmentReq{ID: id, MemberID: memberID}, nil)
}

func (f *Facade) CheckinEquipment(ctx context.Context, id uint) error {
	return f.inv.Invoke(ctx, dispatch.OpCheckinEquipment, handler.EquipmentIDReq{ID: id}, nil)
}

func (f *Facade) GetEquipmentStatusCounts(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	return out, f.inv.Invoke(ctx, dispatch.OpGetEquipmentStatusCounts, nil, &out)
}

// --- Team ---

func (f *Facade) GetTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	var out []model.TeamMember
	return out, f.inv.Invoke(ctx, dispatch.OpGetTeamMembers, nil, &out)
}

func (f *Facade) CreateTeamMember(ctx context.Context, req handler.CreateTeamMemberReq) (*model.TeamMember, error) {
	out := model.TeamMember{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateTeamMember, req, &out)
}

// --- Calendar ---

func (f *Facade) GetCalendarEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	var out []model.CalendarEvent
	return out, f.inv.Invoke(ctx, dispatch.OpGetCalendarEvents, nil, &out)
}

func (f *Facade) CreateCalendarEvent(ctx context.Context, req handler.CreateCalendarEventReq) (*model.CalendarEvent, error) {
	out := model.CalendarEvent{}
	return &out, f.inv.Invoke(ctx, dispatch.OpCreateCalendarEvent, req, &out)
}
