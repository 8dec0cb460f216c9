package inquiry

// Request is one stored subscription inquiry. Immutable once written;
// the log is append-only. Field names match the JSON backing file.
type Request struct {
	RequestID      string   `json:"request_id"`
	Timestamp      string   `json:"timestamp"`
	GymID          int      `json:"gym_id"`
	GymName        string   `json:"gym_name"`
	PartnerName    string   `json:"partner_name"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	PreferredPlan  string   `json:"preferred_plan"`
	BillingAddress string   `json:"billing_address"`
	Message        string   `json:"message"`
	UserLatitude   *float64 `json:"user_latitude"`
	UserLongitude  *float64 `json:"user_longitude"`
	UserCity       *string  `json:"user_city"`
	Status         string   `json:"status"`
}

// StatusPending is the only status new inquiries get; nothing in the
// exposed API mutates it afterwards.
const StatusPending = "pending"

// SubmitRequest is the public inquiry form payload. Validation runs in
// the service so every violated field is reported at once.
type SubmitRequest struct {
	GymID          int      `json:"gym_id"`
	GymName        string   `json:"gym_name" validate:"required"`
	PartnerName    string   `json:"partner_name" validate:"required"`
	FullName       string   `json:"full_name" validate:"required,min=3,max=100"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required,inphone"`
	PreferredPlan  string   `json:"preferred_plan" validate:"required,oneof=1-month 3-month 12-month"`
	BillingAddress string   `json:"billing_address"`
	Message        string   `json:"message"`
	UserLatitude   *float64 `json:"user_latitude" validate:"omitempty,gte=-90,lte=90"`
	UserLongitude  *float64 `json:"user_longitude" validate:"omitempty,gte=-180,lte=180"`
	UserCity       *string  `json:"user_city"`
}
