package dispatch

// Operation names shared by the handler registry and the client façade.
// These are the wire-level request names the UI invokes.
const (
	OpGetClients          = "get-clients"
	OpCreateClient        = "create-client"
	OpDeleteClient        = "delete-client"
	OpGetClientFinancials = "get-client-financials"
	OpGenerateContract    = "generate-contract"

	OpGetProjects   = "get-projects"
	OpGetProject    = "get-project"
	OpCreateProject = "create-project"
	OpDeleteProject = "delete-project"

	OpGetTasks         = "get-tasks"
	OpCreateTask       = "create-task"
	OpUpdateTaskStatus = "update-task-status"
	OpDeleteTask       = "delete-task"

	OpGetChecklist        = "get-checklist"
	OpCreateChecklistItem = "create-checklist-item"
	OpToggleChecklistItem = "toggle-checklist-item"

	OpGetTransactions   = "get-transactions"
	OpCreateTransaction = "create-transaction"

	OpGetEquipment             = "get-equipment"
	OpCreateEquipment          = "create-equipment"
	OpCheckoutEquipment        = "checkout-equipment"
	OpCheckinEquipment         = "checkin-equipment"
	OpGetEquipmentStatusCounts = "get-equipment-status-counts"

	OpGetTeamMembers   = "get-team-members"
	OpCreateTeamMember = "create-team-member"

	OpGetCalendarEvents   = "get-calendar-events"
	OpCreateCalendarEvent = "create-calendar-event"
)
