package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// BillServiceName is the fully-qualified name of the BillService.
const BillServiceName = "billsplit.v1.BillService"

// Procedure paths, one per RPC.
const (
	BillServiceGetBillProcedure                = "/billsplit.v1.BillService/GetBill"
	BillServiceRenameBillProcedure             = "/billsplit.v1.BillService/RenameBill"
	BillServiceResetBillProcedure              = "/billsplit.v1.BillService/ResetBill"
	BillServiceAddLineItemProcedure            = "/billsplit.v1.BillService/AddLineItem"
	BillServiceUpdateLineItemProcedure         = "/billsplit.v1.BillService/UpdateLineItem"
	BillServiceDeleteLineItemProcedure         = "/billsplit.v1.BillService/DeleteLineItem"
	BillServiceAddPersonProcedure              = "/billsplit.v1.BillService/AddPerson"
	BillServiceUpdatePersonProcedure           = "/billsplit.v1.BillService/UpdatePerson"
	BillServiceDeletePersonProcedure           = "/billsplit.v1.BillService/DeletePerson"
	BillServiceAddAdjustmentProcedure          = "/billsplit.v1.BillService/AddAdjustment"
	BillServiceUpdateAdjustmentProcedure       = "/billsplit.v1.BillService/UpdateAdjustment"
	BillServiceDeleteAdjustmentProcedure       = "/billsplit.v1.BillService/DeleteAdjustment"
	BillServiceTogglePersonAssignmentProcedure = "/billsplit.v1.BillService/TogglePersonAssignment"
	BillServiceAssignAllPeopleProcedure        = "/billsplit.v1.BillService/AssignAllPeople"
	BillServiceClearItemAssignmentsProcedure   = "/billsplit.v1.BillService/ClearItemAssignments"
	BillServiceComputeSummaryProcedure         = "/billsplit.v1.BillService/ComputeSummary"
)

// BillServiceHandler is implemented by the server.
type BillServiceHandler interface {
	GetBill(context.Context, *connect.Request[GetBillRequest]) (*connect.Response[BillResponse], error)
	RenameBill(context.Context, *connect.Request[RenameBillRequest]) (*connect.Response[BillResponse], error)
	ResetBill(context.Context, *connect.Request[ResetBillRequest]) (*connect.Response[BillResponse], error)
	AddLineItem(context.Context, *connect.Request[AddLineItemRequest]) (*connect.Response[BillResponse], error)
	UpdateLineItem(context.Context, *connect.Request[UpdateLineItemRequest]) (*connect.Response[BillResponse], error)
	DeleteLineItem(context.Context, *connect.Request[DeleteLineItemRequest]) (*connect.Response[BillResponse], error)
	AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[BillResponse], error)
	UpdatePerson(context.Context, *connect.Request[UpdatePersonRequest]) (*connect.Response[BillResponse], error)
	DeletePerson(context.Context, *connect.Request[DeletePersonRequest]) (*connect.Response[BillResponse], error)
	AddAdjustment(context.Context, *connect.Request[AddAdjustmentRequest]) (*connect.Response[BillResponse], error)
	UpdateAdjustment(context.Context, *connect.Request[UpdateAdjustmentRequest]) (*connect.Response[BillResponse], error)
	DeleteAdjustment(context.Context, *connect.Request[DeleteAdjustmentRequest]) (*connect.Response[BillResponse], error)
	TogglePersonAssignment(context.Context, *connect.Request[TogglePersonAssignmentRequest]) (*connect.Response[BillResponse], error)
	AssignAllPeople(context.Context, *connect.Request[AssignAllPeopleRequest]) (*connect.Response[BillResponse], error)
	ClearItemAssignments(context.Context, *connect.Request[ClearItemAssignmentsRequest]) (*connect.Response[BillResponse], error)
	ComputeSummary(context.Context, *connect.Request[ComputeSummaryRequest]) (*connect.Response[SummaryResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	handlers := map[string]http.Handler{
		BillServiceGetBillProcedure:                connect.NewUnaryHandler(BillServiceGetBillProcedure, svc.GetBill, opts...),
		BillServiceRenameBillProcedure:             connect.NewUnaryHandler(BillServiceRenameBillProcedure, svc.RenameBill, opts...),
		BillServiceResetBillProcedure:              connect.NewUnaryHandler(BillServiceResetBillProcedure, svc.ResetBill, opts...),
		BillServiceAddLineItemProcedure:            connect.NewUnaryHandler(BillServiceAddLineItemProcedure, svc.AddLineItem, opts...),
		BillServiceUpdateLineItemProcedure:         connect.NewUnaryHandler(BillServiceUpdateLineItemProcedure, svc.UpdateLineItem, opts...),
		BillServiceDeleteLineItemProcedure:         connect.NewUnaryHandler(BillServiceDeleteLineItemProcedure, svc.DeleteLineItem, opts...),
		BillServiceAddPersonProcedure:              connect.NewUnaryHandler(BillServiceAddPersonProcedure, svc.AddPerson, opts...),
		BillServiceUpdatePersonProcedure:           connect.NewUnaryHandler(BillServiceUpdatePersonProcedure, svc.UpdatePerson, opts...),
		BillServiceDeletePersonProcedure:           connect.NewUnaryHandler(BillServiceDeletePersonProcedure, svc.DeletePerson, opts...),
		BillServiceAddAdjustmentProcedure:          connect.NewUnaryHandler(BillServiceAddAdjustmentProcedure, svc.AddAdjustment, opts...),
		BillServiceUpdateAdjustmentProcedure:       connect.NewUnaryHandler(BillServiceUpdateAdjustmentProcedure, svc.UpdateAdjustment, opts...),
		BillServiceDeleteAdjustmentProcedure:       connect.NewUnaryHandler(BillServiceDeleteAdjustmentProcedure, svc.DeleteAdjustment, opts...),
		BillServiceTogglePersonAssignmentProcedure: connect.NewUnaryHandler(BillServiceTogglePersonAssignmentProcedure, svc.TogglePersonAssignment, opts...),
		BillServiceAssignAllPeopleProcedure:        connect.NewUnaryHandler(BillServiceAssignAllPeopleProcedure, svc.AssignAllPeople, opts...),
		BillServiceClearItemAssignmentsProcedure:   connect.NewUnaryHandler(BillServiceClearItemAssignmentsProcedure, svc.ClearItemAssignments, opts...),
		BillServiceComputeSummaryProcedure:         connect.NewUnaryHandler(BillServiceComputeSummaryProcedure, svc.ComputeSummary, opts...),
	}

	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// BillServiceClient is a client for the BillService.
type BillServiceClient struct {
	getBill                *connect.Client[GetBillRequest, BillResponse]
	renameBill             *connect.Client[RenameBillRequest, BillResponse]
	resetBill              *connect.Client[ResetBillRequest, BillResponse]
	addLineItem            *connect.Client[AddLineItemRequest, BillResponse]
	updateLineItem         *connect.Client[UpdateLineItemRequest, BillResponse]
	deleteLineItem         *connect.Client[DeleteLineItemRequest, BillResponse]
	addPerson              *connect.Client[AddPersonRequest, BillResponse]
	updatePerson           *connect.Client[UpdatePersonRequest, BillResponse]
	deletePerson           *connect.Client[DeletePersonRequest, BillResponse]
	addAdjustment          *connect.Client[AddAdjustmentRequest, BillResponse]
	updateAdjustment       *connect.Client[UpdateAdjustmentRequest, BillResponse]
	deleteAdjustment       *connect.Client[DeleteAdjustmentRequest, BillResponse]
	togglePersonAssignment *connect.Client[TogglePersonAssignmentRequest, BillResponse]
	assignAllPeople        *connect.Client[AssignAllPeopleRequest, BillResponse]
	clearItemAssignments   *connect.Client[ClearItemAssignmentsRequest, BillResponse]
	computeSummary         *connect.Client[ComputeSummaryRequest, SummaryResponse]
}

// NewBillServiceClient constructs a client for the BillService at baseURL
// (for example, http://localhost:8080).
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &BillServiceClient{
		getBill:                connect.NewClient[GetBillRequest, BillResponse](httpClient, baseURL+BillServiceGetBillProcedure, opts...),
		renameBill:             connect.NewClient[RenameBillRequest, BillResponse](httpClient, baseURL+BillServiceRenameBillProcedure, opts...),
		resetBill:              connect.NewClient[ResetBillRequest, BillResponse](httpClient, baseURL+BillServiceResetBillProcedure, opts...),
		addLineItem:            connect.NewClient[AddLineItemRequest, BillResponse](httpClient, baseURL+BillServiceAddLineItemProcedure, opts...),
		updateLineItem:         connect.NewClient[UpdateLineItemRequest, BillResponse](httpClient, baseURL+BillServiceUpdateLineItemProcedure, opts...),
		deleteLineItem:         connect.NewClient[DeleteLineItemRequest, BillResponse](httpClient, baseURL+BillServiceDeleteLineItemProcedure, opts...),
		addPerson:              connect.NewClient[AddPersonRequest, BillResponse](httpClient, baseURL+BillServiceAddPersonProcedure, opts...),
		updatePerson:           connect.NewClient[UpdatePersonRequest, BillResponse](httpClient, baseURL+BillServiceUpdatePersonProcedure, opts...),
		deletePerson:           connect.NewClient[DeletePersonRequest, BillResponse](httpClient, baseURL+BillServiceDeletePersonProcedure, opts...),
		addAdjustment:          connect.NewClient[AddAdjustmentRequest, BillResponse](httpClient, baseURL+BillServiceAddAdjustmentProcedure, opts...),
		updateAdjustment:       connect.NewClient[UpdateAdjustmentRequest, BillResponse](httpClient, baseURL+BillServiceUpdateAdjustmentProcedure, opts...),
		deleteAdjustment:       connect.NewClient[DeleteAdjustmentRequest, BillResponse](httpClient, baseURL+BillServiceDeleteAdjustmentProcedure, opts...),
		togglePersonAssignment: connect.NewClient[TogglePersonAssignmentRequest, BillResponse](httpClient, baseURL+BillServiceTogglePersonAssignmentProcedure, opts...),
		assignAllPeople:        connect.NewClient[AssignAllPeopleRequest, BillResponse](httpClient, baseURL+BillServiceAssignAllPeopleProcedure, opts...),
		clearItemAssignments:   connect.NewClient[ClearItemAssignmentsRequest, BillResponse](httpClient, baseURL+BillServiceClearItemAssignmentsProcedure, opts...),
		computeSummary:         connect.NewClient[ComputeSummaryRequest, SummaryResponse](httpClient, baseURL+BillServiceComputeSummaryProcedure, opts...),
	}
}

func (c *BillServiceClient) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[BillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) RenameBill(ctx context.Context, req *connect.Request[RenameBillRequest]) (*connect.Response[BillResponse], error) {
	return c.renameBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) ResetBill(ctx context.Context, req *connect.Request[ResetBillRequest]) (*connect.Response[BillResponse], error) {
	return c.resetBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) AddLineItem(ctx context.Context, req *connect.Request[AddLineItemRequest]) (*connect.Response[BillResponse], error) {
	return c.addLineItem.CallUnary(ctx, req)
}

func (c *BillServiceClient) UpdateLineItem(ctx context.Context, req *connect.Request[UpdateLineItemRequest]) (*connect.Response[BillResponse], error) {
	return c.updateLineItem.CallUnary(ctx, req)
}

func (c *BillServiceClient) DeleteLineItem(ctx context.Context, req *connect.Request[DeleteLineItemRequest]) (*connect.Response[BillResponse], error) {
	return c.deleteLineItem.CallUnary(ctx, req)
}

func (c *BillServiceClient) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[BillResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *BillServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[UpdatePersonRequest]) (*connect.Response[BillResponse], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

func (c *BillServiceClient) DeletePerson(ctx context.Context, req *connect.Request[DeletePersonRequest]) (*connect.Response[BillResponse], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

func (c *BillServiceClient) AddAdjustment(ctx context.Context, req *connect.Request[AddAdjustmentRequest]) (*connect.Response[BillResponse], error) {
	return c.addAdjustment.CallUnary(ctx, req)
}

func (c *BillServiceClient) UpdateAdjustment(ctx context.Context, req *connect.Request[UpdateAdjustmentRequest]) (*connect.Response[BillResponse], error) {
	return c.updateAdjustment.CallUnary(ctx, req)
}

func (c *BillServiceClient) DeleteAdjustment(ctx context.Context, req *connect.Request[DeleteAdjustmentRequest]) (*connect.Response[BillResponse], error) {
	return c.deleteAdjustment.CallUnary(ctx, req)
}

func (c *BillServiceClient) TogglePersonAssignment(ctx context.Context, req *connect.Request[TogglePersonAssignmentRequest]) (*connect.Response[BillResponse], error) {
	return c.togglePersonAssignment.CallUnary(ctx, req)
}

func (c *BillServiceClient) AssignAllPeople(ctx context.Context, req *connect.Request[AssignAllPeopleRequest]) (*connect.Response[BillResponse], error) {
	return c.assignAllPeople.CallUnary(ctx, req)
}

func (c *BillServiceClient) ClearItemAssignments(ctx context.Context, req *connect.Request[ClearItemAssignmentsRequest]) (*connect.Response[BillResponse], error) {
	return c.clearItemAssignments.CallUnary(ctx, req)
}

func (c *BillServiceClient) ComputeSummary(ctx context.Context, req *connect.Request[ComputeSummaryRequest]) (*connect.Response[SummaryResponse], error) {
	return c.computeSummary.CallUnary(ctx, req)
}
