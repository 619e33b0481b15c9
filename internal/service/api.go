package service

import (
	"encoding/json"

	"github.com/mmynk/splitit/internal/summary"
)

// SplitServiceName is the fully-qualified name of the split service.
const SplitServiceName = "splitit.v1.SplitService"

// Procedure paths, one per unary RPC.
const (
	RegisterInstallationProcedure = "/" + SplitServiceName + "/RegisterInstallation"
	IngestReceiptProcedure        = "/" + SplitServiceName + "/IngestReceipt"
	GetSessionProcedure           = "/" + SplitServiceName + "/GetSession"
	AddPersonProcedure            = "/" + SplitServiceName + "/AddPerson"
	RenamePersonProcedure         = "/" + SplitServiceName + "/RenamePerson"
	RemovePersonProcedure         = "/" + SplitServiceName + "/RemovePerson"
	SetAssignedPeopleProcedure    = "/" + SplitServiceName + "/SetAssignedPeople"
	AssignItemsProcedure          = "/" + SplitServiceName + "/AssignItems"
	GetAllocationProcedure        = "/" + SplitServiceName + "/GetAllocation"
	GetSummaryProcedure           = "/" + SplitServiceName + "/GetSummary"
	CloseSessionProcedure         = "/" + SplitServiceName + "/CloseSession"
)

// Amounts in responses are 2-decimal strings; rounding happens only here.

type Item struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	AssignedTo  []string `json:"assigned_to"`
}

type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ItemShare struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
	Price       string `json:"price"`
	SharedCount int    `json:"shared_count"`
	Share       string `json:"share"`
}

type PersonSplit struct {
	PersonID string      `json:"person_id"`
	Name     string      `json:"name"`
	Subtotal string      `json:"subtotal"`
	Tax      string      `json:"tax"`
	Tip      string      `json:"tip"`
	Total    string      `json:"total"`
	Items    []ItemShare `json:"items"`
}

type RegisterInstallationRequest struct{}

type RegisterInstallationResponse struct {
	InstallationID string `json:"installation_id"`
	Token          string `json:"token"`
}

type IngestReceiptRequest struct {
	// Receipt is the receipt parser's JSON document, passed through verbatim.
	Receipt json.RawMessage `json:"receipt"`
}

type IngestReceiptResponse struct {
	SessionID string `json:"session_id"`
	UploadID  string `json:"upload_id"`
	Items     []Item `json:"items"`
}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type GetSessionResponse struct {
	SessionID string   `json:"session_id"`
	Items     []Item   `json:"items"`
	People    []Person `json:"people"`
	Total     string   `json:"total"`
	Tax       string   `json:"tax"`
	Tip       string   `json:"tip"`
	CreatedAt int64    `json:"created_at"`
}

type AddPersonRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
}

type RenamePersonRequest struct {
	SessionID string `json:"session_id"`
	PersonID  string `json:"person_id"`
	Name      string `json:"name"`
}

type PersonResponse struct {
	Person Person `json:"person"`
}

type RemovePersonRequest struct {
	SessionID string `json:"session_id"`
	PersonID  string `json:"person_id"`
}

type RemovePersonResponse struct{}

type SetAssignedPeopleRequest struct {
	SessionID string   `json:"session_id"`
	ItemID    string   `json:"item_id"`
	PersonIDs []string `json:"person_ids"`
}

type SetAssignedPeopleResponse struct {
	ItemID              string   `json:"item_id"`
	AssignedTo          []string `json:"assigned_to"`
	AssignedPeopleCount int      `json:"assigned_people_count"`
}

type AssignItemsRequest struct {
	SessionID string   `json:"session_id"`
	PersonID  string   `json:"person_id"`
	ItemIDs   []string `json:"item_ids"`
}

type AssignItemsResponse struct {
	PersonID string   `json:"person_id"`
	ItemIDs  []string `json:"item_ids"`
}

type GetAllocationRequest struct {
	SessionID string `json:"session_id"`
}

type GetAllocationResponse struct {
	People     []PersonSplit `json:"people"`
	Subtotal   string        `json:"subtotal"`
	Tax        string        `json:"tax"`
	Tip        string        `json:"tip"`
	Total      string        `json:"total"`
	Unassigned string        `json:"unassigned"`
}

type GetSummaryRequest struct {
	SessionID string `json:"session_id"`
}

type GetSummaryResponse struct {
	Lines []summary.Line `json:"lines"`
	Text  string         `json:"text"`
}

type CloseSessionRequest struct {
	SessionID string `json:"session_id"`
}

type CloseSessionResponse struct{}
