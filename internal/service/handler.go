package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// NewSplitServiceHandler builds an HTTP handler serving every SplitService
// procedure. It returns the path prefix to mount it on.
func NewSplitServiceHandler(svc *SplitService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(RegisterInstallationProcedure, connect.NewUnaryHandler(RegisterInstallationProcedure, svc.RegisterInstallation, opts...))
	mux.Handle(IngestReceiptProcedure, connect.NewUnaryHandler(IngestReceiptProcedure, svc.IngestReceipt, opts...))
	mux.Handle(GetSessionProcedure, connect.NewUnaryHandler(GetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(AddPersonProcedure, connect.NewUnaryHandler(AddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(RenamePersonProcedure, connect.NewUnaryHandler(RenamePersonProcedure, svc.RenamePerson, opts...))
	mux.Handle(RemovePersonProcedure, connect.NewUnaryHandler(RemovePersonProcedure, svc.RemovePerson, opts...))
	mux.Handle(SetAssignedPeopleProcedure, connect.NewUnaryHandler(SetAssignedPeopleProcedure, svc.SetAssignedPeople, opts...))
	mux.Handle(AssignItemsProcedure, connect.NewUnaryHandler(AssignItemsProcedure, svc.AssignItems, opts...))
	mux.Handle(GetAllocationProcedure, connect.NewUnaryHandler(GetAllocationProcedure, svc.GetAllocation, opts...))
	mux.Handle(GetSummaryProcedure, connect.NewUnaryHandler(GetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(CloseSessionProcedure, connect.NewUnaryHandler(CloseSessionProcedure, svc.CloseSession, opts...))

	return "/" + SplitServiceName + "/", mux
}

// SplitServiceClient is a Connect client for SplitService.
type SplitServiceClient struct {
	registerInstallation *connect.Client[RegisterInstallationRequest, RegisterInstallationResponse]
	ingestReceipt        *connect.Client[IngestReceiptRequest, IngestReceiptResponse]
	getSession           *connect.Client[GetSessionRequest, GetSessionResponse]
	addPerson            *connect.Client[AddPersonRequest, PersonResponse]
	renamePerson         *connect.Client[RenamePersonRequest, PersonResponse]
	removePerson         *connect.Client[RemovePersonRequest, RemovePersonResponse]
	setAssignedPeople    *connect.Client[SetAssignedPeopleRequest, SetAssignedPeopleResponse]
	assignItems          *connect.Client[AssignItemsRequest, AssignItemsResponse]
	getAllocation        *connect.Client[GetAllocationRequest, GetAllocationResponse]
	getSummary           *connect.Client[GetSummaryRequest, GetSummaryResponse]
	closeSession         *connect.Client[CloseSessionRequest, CloseSessionResponse]
}

// NewSplitServiceClient creates a client for the service at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &SplitServiceClient{
		registerInstallation: connect.NewClient[RegisterInstallationRequest, RegisterInstallationResponse](httpClient, baseURL+RegisterInstallationProcedure, opts...),
		ingestReceipt:        connect.NewClient[IngestReceiptRequest, IngestReceiptResponse](httpClient, baseURL+IngestReceiptProcedure, opts...),
		getSession:           connect.NewClient[GetSessionRequest, GetSessionResponse](httpClient, baseURL+GetSessionProcedure, opts...),
		addPerson:            connect.NewClient[AddPersonRequest, PersonResponse](httpClient, baseURL+AddPersonProcedure, opts...),
		renamePerson:         connect.NewClient[RenamePersonRequest, PersonResponse](httpClient, baseURL+RenamePersonProcedure, opts...),
		removePerson:         connect.NewClient[RemovePersonRequest, RemovePersonResponse](httpClient, baseURL+RemovePersonProcedure, opts...),
		setAssignedPeople:    connect.NewClient[SetAssignedPeopleRequest, SetAssignedPeopleResponse](httpClient, baseURL+SetAssignedPeopleProcedure, opts...),
		assignItems:          connect.NewClient[AssignItemsRequest, AssignItemsResponse](httpClient, baseURL+AssignItemsProcedure, opts...),
		getAllocation:        connect.NewClient[GetAllocationRequest, GetAllocationResponse](httpClient, baseURL+GetAllocationProcedure, opts...),
		getSummary:           connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+GetSummaryProcedure, opts...),
		closeSession:         connect.NewClient[CloseSessionRequest, CloseSessionResponse](httpClient, baseURL+CloseSessionProcedure, opts...),
	}
}

func (c *SplitServiceClient) RegisterInstallation(ctx context.Context, req *connect.Request[RegisterInstallationRequest]) (*connect.Response[RegisterInstallationResponse], error) {
	return c.registerInstallation.CallUnary(ctx, req)
}

func (c *SplitServiceClient) IngestReceipt(ctx context.Context, req *connect.Request[IngestReceiptRequest]) (*connect.Response[IngestReceiptResponse], error) {
	return c.ingestReceipt.CallUnary(ctx, req)
}

func (c *SplitServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *SplitServiceClient) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[PersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *SplitServiceClient) RenamePerson(ctx context.Context, req *connect.Request[RenamePersonRequest]) (*connect.Response[PersonResponse], error) {
	return c.renamePerson.CallUnary(ctx, req)
}

func (c *SplitServiceClient) RemovePerson(ctx context.Context, req *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

func (c *SplitServiceClient) SetAssignedPeople(ctx context.Context, req *connect.Request[SetAssignedPeopleRequest]) (*connect.Response[SetAssignedPeopleResponse], error) {
	return c.setAssignedPeople.CallUnary(ctx, req)
}

func (c *SplitServiceClient) AssignItems(ctx context.Context, req *connect.Request[AssignItemsRequest]) (*connect.Response[AssignItemsResponse], error) {
	return c.assignItems.CallUnary(ctx, req)
}

func (c *SplitServiceClient) GetAllocation(ctx context.Context, req *connect.Request[GetAllocationRequest]) (*connect.Response[GetAllocationResponse], error) {
	return c.getAllocation.CallUnary(ctx, req)
}

func (c *SplitServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *SplitServiceClient) CloseSession(ctx context.Context, req *connect.Request[CloseSessionRequest]) (*connect.Response[CloseSessionResponse], error) {
	return c.closeSession.CallUnary(ctx, req)
}
