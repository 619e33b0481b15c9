package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitit/internal/assignment"
	"github.com/mmynk/splitit/internal/auth"
	"github.com/mmynk/splitit/internal/calculator"
	"github.com/mmynk/splitit/internal/metrics"
	"github.com/mmynk/splitit/internal/middleware"
	"github.com/mmynk/splitit/internal/models"
	"github.com/mmynk/splitit/internal/receipt"
	"github.com/mmynk/splitit/internal/roster"
	"github.com/mmynk/splitit/internal/session"
	"github.com/mmynk/splitit/internal/storage"
	"github.com/mmynk/splitit/internal/summary"
)

// SplitService implements the Connect SplitService.
type SplitService struct {
	store      storage.Store
	sessions   *session.Registry
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store, jwtManager *auth.JWTManager, m *metrics.Metrics) *SplitService {
	return &SplitService{
		store:      store,
		sessions:   session.NewRegistry(),
		jwtManager: jwtManager,
		metrics:    m,
	}
}

// toConnectError maps engine errors to Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, roster.ErrNameUnchanged),
		errors.Is(err, calculator.ErrNegativeAmount),
		errors.Is(err, receipt.ErrInvalidReceipt):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, roster.ErrPersonNotFound),
		errors.Is(err, assignment.ErrPersonNotFound),
		errors.Is(err, assignment.ErrItemNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// lookup returns a session owned by the calling installation.
func (s *SplitService) lookup(ctx context.Context, sessionID string) (*session.Session, error) {
	installationID := middleware.GetInstallationID(ctx)
	if installationID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id required"))
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if sess.InstallationID != installationID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("session belongs to another installation"))
	}
	return sess, nil
}

// IngestReceipt creates a session from a parsed receipt and persists the upload.
func (s *SplitService) IngestReceipt(ctx context.Context, req *connect.Request[IngestReceiptRequest]) (*connect.Response[IngestReceiptResponse], error) {
	installationID := middleware.GetInstallationID(ctx)
	if installationID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	rc, err := receipt.Decode(bytes.NewReader(req.Msg.Receipt))
	if err != nil {
		slog.Error("IngestReceipt: invalid receipt", "installation_id", installationID, "error", err)
		return nil, toConnectError(err)
	}

	sess := session.New(installationID, rc.Catalog(), rc.Totals())
	upload := &models.Upload{
		InstallationID: installationID,
		SessionID:      sess.ID,
		Items:          sess.Catalog(),
		Totals:         sess.Totals(),
	}
	err = s.store.SaveUpload(ctx, upload)
	s.metrics.UploadsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		slog.Error("IngestReceipt: failed to save upload", "installation_id", installationID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.sessions.Put(sess)
	s.metrics.SessionsActive.Set(float64(s.sessions.Len()))

	slog.Info("Receipt ingested",
		"installation_id", installationID,
		"session_id", sess.ID,
		"upload_id", upload.ID,
		"items_count", len(sess.Catalog()),
	)

	return connect.NewResponse(&IngestReceiptResponse{
		SessionID: sess.ID,
		UploadID:  upload.ID,
		Items:     itemsToProto(sess.Snapshot()),
	}), nil
}

// GetSession returns the catalog, roster and current assignments.
func (s *SplitService) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.Snapshot()
	people := make([]Person, len(snap.People))
	for i, p := range snap.People {
		people[i] = personToProto(p)
	}

	return connect.NewResponse(&GetSessionResponse{
		SessionID: sess.ID,
		Items:     itemsToProto(snap),
		People:    people,
		Total:     summary.Money(snap.Totals.Total),
		Tax:       summary.Money(snap.Totals.Tax),
		Tip:       summary.Money(snap.Totals.Tip),
		CreatedAt: sess.CreatedAt,
	}), nil
}

// AddPerson adds a person to the session's roster.
func (s *SplitService) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[PersonResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	person, err := sess.AddPerson(req.Msg.Name)
	if err != nil {
		slog.Error("AddPerson failed", "session_id", sess.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Person added", "session_id", sess.ID, "person_id", person.ID)
	return connect.NewResponse(&PersonResponse{Person: personToProto(person)}), nil
}

// RenamePerson changes a person's display name.
func (s *SplitService) RenamePerson(ctx context.Context, req *connect.Request[RenamePersonRequest]) (*connect.Response[PersonResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	person, err := sess.RenamePerson(req.Msg.PersonID, req.Msg.Name)
	if err != nil {
		slog.Error("RenamePerson failed", "session_id", sess.ID, "person_id", req.Msg.PersonID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Person renamed", "session_id", sess.ID, "person_id", person.ID)
	return connect.NewResponse(&PersonResponse{Person: personToProto(person)}), nil
}

// RemovePerson removes a person and all of their assignments.
func (s *SplitService) RemovePerson(ctx context.Context, req *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.RemovePerson(req.Msg.PersonID); err != nil {
		slog.Error("RemovePerson failed", "session_id", sess.ID, "person_id", req.Msg.PersonID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Person removed", "session_id", sess.ID, "person_id", req.Msg.PersonID)
	return connect.NewResponse(&RemovePersonResponse{}), nil
}

// SetAssignedPeople replaces the set of people splitting one item.
func (s *SplitService) SetAssignedPeople(ctx context.Context, req *connect.Request[SetAssignedPeopleRequest]) (*connect.Response[SetAssignedPeopleResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.SetAssignedPeople(req.Msg.ItemID, req.Msg.PersonIDs); err != nil {
		slog.Error("SetAssignedPeople failed", "session_id", sess.ID, "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	snap := sess.Snapshot()
	assigned := snap.Assignments.AssigneesOf(req.Msg.ItemID)
	slog.Info("Item assignees set",
		"session_id", sess.ID,
		"item_id", req.Msg.ItemID,
		"assigned_count", len(assigned),
	)

	return connect.NewResponse(&SetAssignedPeopleResponse{
		ItemID:              req.Msg.ItemID,
		AssignedTo:          assigned,
		AssignedPeopleCount: snap.Assignments.AssignedPeopleCount(req.Msg.ItemID),
	}), nil
}

// AssignItems replaces the set of items one person is splitting.
func (s *SplitService) AssignItems(ctx context.Context, req *connect.Request[AssignItemsRequest]) (*connect.Response[AssignItemsResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.AssignItems(req.Msg.PersonID, req.Msg.ItemIDs); err != nil {
		slog.Error("AssignItems failed", "session_id", sess.ID, "person_id", req.Msg.PersonID, "error", err)
		return nil, toConnectError(err)
	}

	itemIDs := sess.Snapshot().Assignments.ItemsFor(req.Msg.PersonID)
	slog.Info("Person items set", "session_id", sess.ID, "person_id", req.Msg.PersonID, "items_count", len(itemIDs))

	return connect.NewResponse(&AssignItemsResponse{
		PersonID: req.Msg.PersonID,
		ItemIDs:  itemIDs,
	}), nil
}

// calculate runs the calculator for a session and records the outcome.
func (s *SplitService) calculate(sess *session.Session) (*calculator.Split, error) {
	split, err := sess.Calculate()
	s.metrics.AllocationsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		slog.Error("CalculateSplit failed", "session_id", sess.ID, "error", err)
		return nil, toConnectError(err)
	}
	for _, ps := range split.People {
		slog.Debug("Person split",
			"session_id", sess.ID,
			"person_id", ps.PersonID,
			"subtotal", ps.Subtotal.String(),
			"tax", ps.Tax.String(),
			"tip", ps.Tip.String(),
			"total", ps.Total.String(),
			"items_count", len(ps.Items),
		)
	}
	return split, nil
}

// GetAllocation computes every person's subtotal, tax, tip and total.
func (s *SplitService) GetAllocation(ctx context.Context, req *connect.Request[GetAllocationRequest]) (*connect.Response[GetAllocationResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	split, err := s.calculate(sess)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&GetAllocationResponse{
		People:     splitsToProto(split.People),
		Subtotal:   summary.Money(split.Subtotal),
		Tax:        summary.Money(split.Tax),
		Tip:        summary.Money(split.Tip),
		Total:      summary.Money(split.Total()),
		Unassigned: summary.Money(split.Unassigned),
	}), nil
}

// GetSummary returns the shareable per-person totals.
func (s *SplitService) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	split, err := s.calculate(sess)
	if err != nil {
		return nil, err
	}

	lines := summary.Lines(split)
	return connect.NewResponse(&GetSummaryResponse{
		Lines: lines,
		Text:  summary.Text(lines),
	}), nil
}

// CloseSession drops a session from memory.
func (s *SplitService) CloseSession(ctx context.Context, req *connect.Request[CloseSessionRequest]) (*connect.Response[CloseSessionResponse], error) {
	sess, err := s.lookup(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(sess.ID); err != nil {
		return nil, toConnectError(err)
	}
	s.metrics.SessionsActive.Set(float64(s.sessions.Len()))

	slog.Info("Session closed", "session_id", sess.ID)
	return connect.NewResponse(&CloseSessionResponse{}), nil
}

// ExpireIdleSessions drops sessions unused for longer than ttl.
func (s *SplitService) ExpireIdleSessions(ttl time.Duration) int {
	expired := s.sessions.Expire(ttl)
	s.metrics.SessionsActive.Set(float64(s.sessions.Len()))
	for _, id := range expired {
		slog.Info("Session expired", "session_id", id)
	}
	return len(expired)
}

// RunSessionExpiry calls ExpireIdleSessions every interval until ctx is done.
func (s *SplitService) RunSessionExpiry(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ExpireIdleSessions(ttl)
		}
	}
}

func personToProto(p models.Person) Person {
	return Person{ID: p.ID, Name: p.Name}
}

func itemsToProto(snap *session.Snapshot) []Item {
	assignedTo := snap.AssignedTo()
	items := make([]Item, len(snap.Catalog))
	for i, item := range snap.Catalog {
		items[i] = Item{
			ID:          item.ID,
			Description: item.Description,
			Price:       summary.Money(item.Price),
			AssignedTo:  assignedTo[item.ID],
		}
	}
	return items
}

func splitsToProto(splits []calculator.PersonSplit) []PersonSplit {
	out := make([]PersonSplit, len(splits))
	for i, ps := range splits {
		shares := make([]ItemShare, len(ps.Items))
		for j, is := range ps.Items {
			shares[j] = ItemShare{
				ItemID:      is.ItemID,
				Description: is.Description,
				Price:       summary.Money(is.Price),
				SharedCount: is.SharedCount,
				Share:       summary.Money(is.Share),
			}
		}
		out[i] = PersonSplit{
			PersonID: ps.PersonID,
			Name:     ps.Name,
			Subtotal: summary.Money(ps.Subtotal),
			Tax:      summary.Money(ps.Tax),
			Tip:      summary.Money(ps.Tip),
			Total:    summary.Money(ps.Total),
			Items:    shares,
		}
	}
	return out
}
