package http

import (
	"time"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
	"pod/internal/core/domain/model/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type NewUser struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
	Phone      string `json:"phone"`
	Area       string `json:"area"`
}

type UpdateMessenger struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
	Phone      string `json:"phone"`
	Area       string `json:"area"`
	IsActive   *bool  `json:"isActive"`
}

type DeleteMessengerResponse struct {
	Message           string `json:"message"`
	DeletedDeliveries int64  `json:"deletedDeliveries"`
	UnassignedBills   int    `json:"unassignedBills"`
}

type NewBill struct {
	AccountNumber string     `json:"accountNumber"`
	CustomerName  string     `json:"customerName"`
	Address       string     `json:"address"`
	Route         string     `json:"route"`
	Area          string     `json:"area"`
	BillType      string     `json:"billType"`
	BillingMonth  *time.Time `json:"billingMonth"`
	Amount        float64    `json:"amount"`
	Quantity      int        `json:"quantity"`
	Notes         string     `json:"notes"`
}

type NewBills struct {
	Bills []NewBill `json:"bills"`
}

type AssignBillsRequest struct {
	BillIDs     []string `json:"billIds"`
	MessengerID string   `json:"messengerId"`
}

type VerifyDeliveryRequest struct {
	VerificationStatus string `json:"verificationStatus"`
	VerificationNotes  string `json:"verificationNotes"`
}

type ReassignDeliveryRequest struct {
	NewMessengerID string `json:"newMessengerId"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status"`
	FailureReason string `json:"failureReason"`
	Notes         string `json:"notes"`
}

type AttachProofRequest struct {
	ImageData string `json:"imageData"`
}

type GenerateReportRequest struct {
	ReportDate string `json:"reportDate"`
}

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Area       string    `json:"area,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ItemFailure struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

// BatchResponse reports a bulk operation item by item.
type BatchResponse struct {
	Count     int           `json:"count"`
	Succeeded []string      `json:"succeeded"`
	Failed    []ItemFailure `json:"failed"`
}

type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Area  string `json:"area,omitempty"`
}

type Bill struct {
	ID            string     `json:"id"`
	AccountNumber string     `json:"accountNumber"`
	CustomerName  string     `json:"customerName"`
	Address       string     `json:"address"`
	Route         string     `json:"route,omitempty"`
	Area          string     `json:"area,omitempty"`
	BillType      string     `json:"billType,omitempty"`
	BillingMonth  *time.Time `json:"billingMonth,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	Quantity      int        `json:"quantity,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status,omitempty"`
	AssignedTo    *Person    `json:"assignedTo,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type ProofImage struct {
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
	Size      int       `json:"size"`
}

type Delivery struct {
	ID                 string       `json:"id"`
	Bill               Bill         `json:"bill"`
	Messenger          Person       `json:"messenger"`
	CoordinatorID      *string      `json:"coordinatorId,omitempty"`
	Status             string       `json:"status"`
	DeliveryDate       *time.Time   `json:"deliveryDate,omitempty"`
	FailureReason      string       `json:"failureReason,omitempty"`
	Notes              string       `json:"notes,omitempty"`
	VerificationStatus string       `json:"verificationStatus"`
	VerifiedBy         *string      `json:"verifiedBy,omitempty"`
	VerifiedAt         *time.Time   `json:"verifiedAt,omitempty"`
	VerificationNotes  string       `json:"verificationNotes,omitempty"`
	ProofCount         int          `json:"proofCount"`
	ProofImages        []ProofImage `json:"proofImages,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

type DeliveryUpdateResponse struct {
	Message  string   `json:"message"`
	Delivery Delivery `json:"delivery"`
}

// Stats counts a delivery listing. Verified is only reported by tracking.
type Stats struct {
	Total     int  `json:"total"`
	Delivered int  `json:"delivered"`
	Failed    int  `json:"failed"`
	Pending   int  `json:"pending"`
	Verified  *int `json:"verified,omitempty"`
}

type TrackingResponse struct {
	Deliveries []Delivery `json:"deliveries"`
	Stats      Stats      `json:"stats"`
}

type InventoryEntry struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ReportSummary struct {
	TotalBillsProcessed       int     `json:"totalBillsProcessed"`
	TotalBillsDelivered       int     `json:"totalBillsDelivered"`
	TotalDisconnectionNotices int     `json:"totalDisconnectionNotices"`
	NoticesDelivered          int     `json:"noticesDelivered"`
	FailureCount              int     `json:"failureCount"`
	DeliveryRate              float64 `json:"deliveryRate"`
}

type MessengerPerformance struct {
	MessengerID      string  `json:"messengerId"`
	MessengerName    string  `json:"messengerName"`
	Assigned         int     `json:"assigned"`
	Delivered        int     `json:"delivered"`
	Failed           int     `json:"failed"`
	PerformanceScore float64 `json:"performanceScore"`
}

type RoutePerformance struct {
	Route          string  `json:"route"`
	Area           string  `json:"area"`
	BillsProcessed int     `json:"billsProcessed"`
	BillsDelivered int     `json:"billsDelivered"`
	CompletionRate float64 `json:"completionRate"`
}

type Stage struct {
	Stage      string `json:"stage"`
	Duration   int    `json:"duration"`
	Dependency string `json:"dependency"`
}

type CriticalPath struct {
	Stages              []Stage   `json:"stages"`
	EstimatedCompletion time.Time `json:"estimatedCompletion"`
}

type GenerateReportResponse struct {
	Message string `json:"message"`
	Report  Report `json:"report"`
}

type Report struct {
	ID                   string                 `json:"id"`
	ReportType           string                 `json:"reportType"`
	ReportDate           time.Time              `json:"reportDate"`
	Period               Period                 `json:"period"`
	CoordinatorID        *string                `json:"coordinatorId,omitempty"`
	Summary              ReportSummary          `json:"summary"`
	MessengerPerformance []MessengerPerformance `json:"messengerPerformance"`
	RoutePerformance     []RoutePerformance     `json:"routePerformance"`
	CriticalPath         CriticalPath           `json:"criticalPath"`
	GeneratedAt          time.Time              `json:"generatedAt"`
}

func toUser(u *user.User) User {
	p := u.Profile()
	return User{
		ID:         u.ID().String(),
		Name:       u.Name(),
		Email:      u.Email(),
		Role:       u.Role().String(),
		EmployeeID: p.EmployeeID,
		Phone:      p.Phone,
		Area:       p.Area,
		IsActive:   u.IsActive(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}

func userFromView(v queries.UserView) User {
	return User{
		ID:         v.ID.String(),
		Name:       v.Name,
		Email:      v.Email,
		Role:       v.Role.String(),
		EmployeeID: v.EmployeeID,
		Phone:      v.Phone,
		Area:       v.Area,
		IsActive:   v.Active,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func toBatchResponse(r commands.BatchResult) BatchResponse {
	resp := BatchResponse{
		Count:     r.Count(),
		Succeeded: make([]string, 0, len(r.Succeeded)),
		Failed:    make([]ItemFailure, 0, len(r.Failed)),
	}
	for _, id := range r.Succeeded {
		resp.Succeeded = append(resp.Succeeded, id.String())
	}
	for _, f := range r.Failed {
		resp.Failed = append(resp.Failed, ItemFailure(f))
	}
	return resp
}

func billFromView(v queries.BillView) Bill {
	amount := v.Amount
	createdAt, updatedAt := v.CreatedAt, v.UpdatedAt

	b := Bill{
		ID:            v.ID.String(),
		AccountNumber: v.AccountNumber,
		CustomerName:  v.CustomerName,
		Address:       v.Address,
		Route:         v.Route,
		Area:          v.Area,
		BillType:      v.Type.String(),
		BillingMonth:  v.BillingMonth,
		Amount:        &amount,
		Quantity:      v.Quantity,
		Notes:         v.Notes,
		Status:        v.Status.String(),
		CreatedAt:     &createdAt,
		UpdatedAt:     &updatedAt,
	}
	if v.AssignedTo != nil {
		p := personFromSummary(*v.AssignedTo)
		b.AssignedTo = &p
	}
	return b
}

func personFromSummary(s queries.PersonSummary) Person {
	return Person{
		ID:    s.ID.String(),
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
		Area:  s.Area,
	}
}

func deliveryFromView(v queries.DeliveryView) Delivery {
	d := Delivery{
		ID: v.ID.String(),
		Bill: Bill{
			ID:            v.Bill.ID.String(),
			AccountNumber: v.Bill.AccountNumber,
			CustomerName:  v.Bill.CustomerName,
			Address:       v.Bill.Address,
			Route:         v.Bill.Route,
			Area:          v.Bill.Area,
		},
		Messenger:          personFromSummary(v.Messenger),
		CoordinatorID:      idString(v.CoordinatorID),
		Status:             v.Status.String(),
		DeliveryDate:       v.DeliveryDate,
		FailureReason:      v.FailureReason,
		Notes:              v.Notes,
		VerificationStatus: v.VerificationStatus.String(),
		VerifiedBy:         idString(v.VerifiedBy),
		VerifiedAt:         v.VerifiedAt,
		VerificationNotes:  v.VerificationNotes,
		ProofCount:         v.ProofCount,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
	// Bills deleted since the delivery was created leave the type and status unknown.
	if v.Bill.Type.Validate() == nil {
		d.Bill.BillType = v.Bill.Type.String()
	}
	if v.Bill.Status.Validate() == nil {
		d.Bill.Status = v.Bill.Status.String()
	}
	return d
}

func deliveriesFromViews(views []queries.DeliveryView) []Delivery {
	resp := make([]Delivery, 0, len(views))
	for _, v := range views {
		resp = append(resp, deliveryFromView(v))
	}
	return resp
}

func deliveryFromDetail(detail queries.DeliveryDetail) Delivery {
	d := deliveryFromView(detail.DeliveryView)
	for _, p := range detail.ProofImages {
		d.ProofImages = append(d.ProofImages, ProofImage(p))
	}
	return d
}

// toDelivery renders an aggregate returned by a command. Only ids are known
// for the bill and messenger beyond the snapshot the delivery carries.
func toDelivery(d *delivery.Delivery) Delivery {
	snapshot := d.Bill()
	resp := Delivery{
		ID: d.ID().String(),
		Bill: Bill{
			ID:            d.BillID().String(),
			AccountNumber: snapshot.AccountNumber,
			CustomerName:  snapshot.CustomerName,
			Address:       snapshot.Address,
			Route:         snapshot.Route,
		},
		Messenger:          Person{ID: d.MessengerID().String()},
		CoordinatorID:      idString(d.CoordinatorID()),
		Status:             d.Status().String(),
		DeliveryDate:       d.DeliveryDate(),
		FailureReason:      d.FailureReason(),
		Notes:              d.Notes(),
		VerificationStatus: d.VerificationStatus().String(),
		VerifiedBy:         idString(d.VerifiedBy()),
		VerifiedAt:         d.VerifiedAt(),
		VerificationNotes:  d.VerificationNotes(),
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
	}
	for _, p := range d.ProofImages() {
		resp.ProofImages = append(resp.ProofImages, ProofImage{URL: p.URL(), Timestamp: p.Timestamp(), Size: p.Size()})
	}
	resp.ProofCount = len(resp.ProofImages)
	return resp
}

func toTracking(t queries.DeliveryTracking, withVerified bool) TrackingResponse {
	resp := TrackingResponse{
		Deliveries: deliveriesFromViews(t.Deliveries),
		Stats: Stats{
			Total:     t.Stats.Total,
			Delivered: t.Stats.Delivered,
			Failed:    t.Stats.Failed,
			Pending:   t.Stats.Pending,
		},
	}
	if withVerified {
		verified := t.Stats.Verified
		resp.Stats.Verified = &verified
	}
	return resp
}

func toReport(r *report.Report) Report {
	c := r.Content()
	resp := Report{
		ID:            r.ID().String(),
		ReportType:    c.Type.String(),
		ReportDate:    c.ReportDate,
		Period:        Period{Start: c.Period.Start, End: c.Period.End},
		CoordinatorID: idString(c.CoordinatorID),
		Summary: ReportSummary{
			TotalBillsProcessed:       c.Summary.TotalBillsProcessed,
			TotalBillsDelivered:       c.Summary.TotalBillsDelivered,
			TotalDisconnectionNotices: c.Summary.TotalDisconnectionNotices,
			NoticesDelivered:          c.Summary.NoticesDelivered,
			FailureCount:              c.Summary.FailureCount,
			DeliveryRate:              c.Summary.DeliveryRate,
		},
		MessengerPerformance: make([]MessengerPerformance, 0, len(c.MessengerPerformance)),
		RoutePerformance:     make([]RoutePerformance, 0, len(c.RoutePerformance)),
		CriticalPath: CriticalPath{
			Stages:              make([]Stage, 0, len(c.CriticalPath.Stages)),
			EstimatedCompletion: c.CriticalPath.EstimatedCompletion,
		},
		GeneratedAt: c.GeneratedAt,
	}
	for _, m := range c.MessengerPerformance {
		resp.MessengerPerformance = append(resp.MessengerPerformance, MessengerPerformance{
			MessengerID:      m.MessengerID.String(),
			MessengerName:    m.MessengerName,
			Assigned:         m.Assigned,
			Delivered:        m.Delivered,
			Failed:           m.Failed,
			PerformanceScore: m.PerformanceScore,
		})
	}
	for _, rp := range c.RoutePerformance {
		resp.RoutePerformance = append(resp.RoutePerformance, RoutePerformance(rp))
	}
	for _, s := range c.CriticalPath.Stages {
		resp.CriticalPath.Stages = append(resp.CriticalPath.Stages, Stage{
			Stage:      s.Name,
			Duration:   s.Duration,
			Dependency: s.Dependency,
		})
	}
	return resp
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
