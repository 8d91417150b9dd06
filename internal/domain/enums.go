package domain

// SystemIntakeStatus is the admin-facing workflow status of a governance request.
type SystemIntakeStatus string

const (
	SystemIntakeStatusIntakeDraft           SystemIntakeStatus = "INTAKE_DRAFT"
	SystemIntakeStatusIntakeSubmitted       SystemIntakeStatus = "INTAKE_SUBMITTED"
	SystemIntakeStatusNeedBizCase           SystemIntakeStatus = "NEED_BIZ_CASE"
	SystemIntakeStatusBizCaseDraft          SystemIntakeStatus = "BIZ_CASE_DRAFT"
	SystemIntakeStatusBizCaseDraftSubmitted SystemIntakeStatus = "BIZ_CASE_DRAFT_SUBMITTED"
	SystemIntakeStatusBizCaseChangesNeeded  SystemIntakeStatus = "BIZ_CASE_CHANGES_NEEDED"
	SystemIntakeStatusReadyForGRT           SystemIntakeStatus = "READY_FOR_GRT"
	SystemIntakeStatusBizCaseFinalNeeded    SystemIntakeStatus = "BIZ_CASE_FINAL_NEEDED"
	SystemIntakeStatusBizCaseFinalSubmitted SystemIntakeStatus = "BIZ_CASE_FINAL_SUBMITTED"
	SystemIntakeStatusReadyForGRB           SystemIntakeStatus = "READY_FOR_GRB"
	SystemIntakeStatusLCIDIssued            SystemIntakeStatus = "LCID_ISSUED"
	SystemIntakeStatusLCIDExpired           SystemIntakeStatus = "LCID_EXPIRED"
	SystemIntakeStatusLCIDRetired           SystemIntakeStatus = "LCID_RETIRED"
	SystemIntakeStatusWithdrawn             SystemIntakeStatus = "WITHDRAWN"
	SystemIntakeStatusNotITRequest          SystemIntakeStatus = "NOT_IT_REQUEST"
	SystemIntakeStatusNotApproved           SystemIntakeStatus = "NOT_APPROVED"
	SystemIntakeStatusNoGovernance          SystemIntakeStatus = "NO_GOVERNANCE"
	SystemIntakeStatusShutdownInProgress    SystemIntakeStatus = "SHUTDOWN_IN_PROGRESS"
	SystemIntakeStatusShutdownComplete      SystemIntakeStatus = "SHUTDOWN_COMPLETE"
)

// systemIntakeStatusOrder is the fixed priority order used when sorting by status.
var systemIntakeStatusOrder = []SystemIntakeStatus{
	SystemIntakeStatusIntakeDraft,
	SystemIntakeStatusIntakeSubmitted,
	SystemIntakeStatusNeedBizCase,
	SystemIntakeStatusBizCaseDraft,
	SystemIntakeStatusBizCaseDraftSubmitted,
	SystemIntakeStatusBizCaseChangesNeeded,
	SystemIntakeStatusReadyForGRT,
	SystemIntakeStatusBizCaseFinalNeeded,
	SystemIntakeStatusBizCaseFinalSubmitted,
	SystemIntakeStatusReadyForGRB,
	SystemIntakeStatusLCIDIssued,
	SystemIntakeStatusLCIDExpired,
	SystemIntakeStatusLCIDRetired,
	SystemIntakeStatusWithdrawn,
	SystemIntakeStatusNotITRequest,
	SystemIntakeStatusNotApproved,
	SystemIntakeStatusNoGovernance,
	SystemIntakeStatusShutdownInProgress,
	SystemIntakeStatusShutdownComplete,
}

var systemIntakeStatusIndex = func() map[SystemIntakeStatus]int {
	m := make(map[SystemIntakeStatus]int, len(systemIntakeStatusOrder))
	for i, s := range systemIntakeStatusOrder {
		m[s] = i
	}
	return m
}()

func (s SystemIntakeStatus) String() string { return string(s) }

func (s SystemIntakeStatus) IsValid() bool {
	_, ok := systemIntakeStatusIndex[s]
	return ok
}

// Priority returns the position of s in the status sort order.
// Unknown statuses sort after every known one.
func (s SystemIntakeStatus) Priority() int {
	if i, ok := systemIntakeStatusIndex[s]; ok {
		return i
	}
	return len(systemIntakeStatusOrder)
}

// SystemIntakeStatuses returns all statuses in priority order.
func SystemIntakeStatuses() []SystemIntakeStatus {
	out := make([]SystemIntakeStatus, len(systemIntakeStatusOrder))
	copy(out, systemIntakeStatusOrder)
	return out
}

// RequestState is the coarse workflow bucket a request is listed under.
type RequestState string

const (
	RequestStateOpen   RequestState = "OPEN"
	RequestStateClosed RequestState = "CLOSED"
)

func (s RequestState) String() string { return string(s) }

func (s RequestState) IsValid() bool {
	switch s {
	case RequestStateOpen, RequestStateClosed:
		return true
	}
	return false
}

// ActionType identifies a workflow event recorded against an intake.
type ActionType string

const (
	ActionTypeSubmitIntake         ActionType = "SUBMIT_INTAKE"
	ActionTypeSubmitBizCase        ActionType = "SUBMIT_BIZ_CASE"
	ActionTypeSubmitFinalBizCase   ActionType = "SUBMIT_FINAL_BIZ_CASE"
	ActionTypeProgressToNewStep    ActionType = "PROGRESS_TO_NEW_STEP"
	ActionTypeRequestEdits         ActionType = "REQUEST_EDITS"
	ActionTypeIssueLCID            ActionType = "ISSUE_LCID"
	ActionTypeExpireLCID           ActionType = "EXPIRE_LCID"
	ActionTypeRetireLCID           ActionType = "RETIRE_LCID"
	ActionTypeNotITRequest         ActionType = "NOT_IT_REQUEST"
	ActionTypeNotApproved          ActionType = "NOT_APPROVED"
	ActionTypeCloseRequest         ActionType = "CLOSE_REQUEST"
	ActionTypeReopenRequest        ActionType = "REOPEN_REQUEST"
	ActionTypeChangeLCIDRetireDate ActionType = "CHANGE_LCID_RETIREMENT_DATE"
)

func (a ActionType) String() string { return string(a) }

func (a ActionType) IsValid() bool {
	switch a {
	case ActionTypeSubmitIntake, ActionTypeSubmitBizCase, ActionTypeSubmitFinalBizCase,
		ActionTypeProgressToNewStep, ActionTypeRequestEdits, ActionTypeIssueLCID,
		ActionTypeExpireLCID, ActionTypeRetireLCID, ActionTypeNotITRequest,
		ActionTypeNotApproved, ActionTypeCloseRequest, ActionTypeReopenRequest,
		ActionTypeChangeLCIDRetireDate:
		return true
	}
	return false
}

// SystemRelationshipType describes how a request relates to a CEDAR system.
type SystemRelationshipType string

const (
	SystemRelationshipPrimarySupport        SystemRelationshipType = "PRIMARY_SUPPORT"
	SystemRelationshipPartialSupport        SystemRelationshipType = "PARTIAL_SUPPORT"
	SystemRelationshipUsesOrImpactedBy      SystemRelationshipType = "USES_OR_IMPACTED_BY_SELECTED_SYSTEM"
	SystemRelationshipImpactsSelectedSystem SystemRelationshipType = "IMPACTS_SELECTED_SYSTEM"
	SystemRelationshipOther                 SystemRelationshipType = "OTHER"
)

func (r SystemRelationshipType) String() string { return string(r) }

func (r SystemRelationshipType) IsValid() bool {
	switch r {
	case SystemRelationshipPrimarySupport, SystemRelationshipPartialSupport,
		SystemRelationshipUsesOrImpactedBy, SystemRelationshipImpactsSelectedSystem,
		SystemRelationshipOther:
		return true
	}
	return false
}

// TRBRequestStatus is the workflow status of a technical review board request.
type TRBRequestStatus string

const (
	TRBRequestStatusNew                  TRBRequestStatus = "NEW"
	TRBRequestStatusReadyForConsult      TRBRequestStatus = "READY_FOR_CONSULT"
	TRBRequestStatusConsultScheduled     TRBRequestStatus = "CONSULT_SCHEDULED"
	TRBRequestStatusConsultComplete      TRBRequestStatus = "CONSULT_COMPLETE"
	TRBRequestStatusDraftAdviceLetter    TRBRequestStatus = "DRAFT_ADVICE_LETTER"
	TRBRequestStatusAdviceLetterInReview TRBRequestStatus = "ADVICE_LETTER_IN_REVIEW"
	TRBRequestStatusAdviceLetterSent     TRBRequestStatus = "ADVICE_LETTER_SENT"
	TRBRequestStatusFollowUpRequested    TRBRequestStatus = "FOLLOW_UP_REQUESTED"
)

func (s TRBRequestStatus) String() string { return string(s) }

func (s TRBRequestStatus) IsValid() bool {
	switch s {
	case TRBRequestStatusNew, TRBRequestStatusReadyForConsult, TRBRequestStatusConsultScheduled,
		TRBRequestStatusConsultComplete, TRBRequestStatusDraftAdviceLetter,
		TRBRequestStatusAdviceLetterInReview, TRBRequestStatusAdviceLetterSent,
		TRBRequestStatusFollowUpRequested:
		return true
	}
	return false
}
