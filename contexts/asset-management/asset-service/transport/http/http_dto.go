package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type UserDTO struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	Photo            string `json:"photo,omitempty"`
	Role             string `json:"role"`
	CompanyName      string `json:"companyName,omitempty"`
	CompanyLogo      string `json:"companyLogo,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	PackageLimit     int    `json:"packageLimit,omitempty"`
	CurrentEmployees int    `json:"currentEmployees"`
	LastUpgrade      string `json:"lastUpgrade,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Role        string `json:"role" binding:"required"`
	CompanyName string `json:"companyName"`
	CompanyLogo string `json:"companyLogo"`
	DateOfBirth string `json:"dateOfBirth"`
}

type RegisterUserResponse struct {
	Message    string `json:"message,omitempty"`
	Inserted   bool   `json:"inserted"`
	InsertedID string `json:"insertedId,omitempty"`
}

type UserRoleResponse struct {
	Role *string `json:"role"`
}

type AssetDTO struct {
	ID                string `json:"_id"`
	ProductName       string `json:"productName"`
	ProductImage      string `json:"productImage,omitempty"`
	ProductType       string `json:"productType"`
	ProductQuantity   int    `json:"productQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
	HREmail           string `json:"hrEmail"`
	CompanyName       string `json:"companyName"`
	DateAdded         string `json:"dateAdded"`
}

type CreateAssetRequest struct {
	ProductName     string `json:"productName"`
	ProductImage    string `json:"productImage"`
	ProductType     string `json:"productType"`
	ProductQuantity int    `json:"productQuantity"`
}

type CreateAssetResponse struct {
	InsertedID string   `json:"insertedId"`
	Asset      AssetDTO `json:"asset"`
}

type ListAssetsRequest struct {
	Page   string `form:"page"`
	Limit  string `form:"limit"`
	Search string `form:"search"`
	Type   string `form:"type"`
	Sort   string `form:"sort"`
	Order  string `form:"order"`
}

type ListAssetsResponse struct {
	Assets      []AssetDTO `json:"assets"`
	TotalAssets int        `json:"totalAssets"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

type AvailableAssetsRequest struct {
	Search string `form:"search"`
	Type   string `form:"type"`
}

type RequestDTO struct {
	ID             string `json:"_id"`
	AssetID        string `json:"assetId"`
	AssetName      string `json:"assetName"`
	AssetType      string `json:"assetType"`
	AssetImage     string `json:"assetImage,omitempty"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterName  string `json:"requesterName"`
	HREmail        string `json:"hrEmail"`
	CompanyName    string `json:"companyName"`
	Note           string `json:"note,omitempty"`
	RequestStatus  string `json:"requestStatus"`
	RequestDate    string `json:"requestDate"`
	ApprovalDate   string `json:"approvalDate,omitempty"`
	ReturnDate     string `json:"returnDate,omitempty"`
}

type SubmitRequestRequest struct {
	AssetID       string `json:"assetId" binding:"required"`
	RequesterName string `json:"requesterName"`
	Note          string `json:"note"`
}

type SubmitRequestResponse struct {
	InsertedID string     `json:"insertedId"`
	Request    RequestDTO `json:"request"`
}

type ListRequestsRequest struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type ApproveRequestResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Affiliated bool   `json:"affiliated"`
}

type CancelRequestResponse struct {
	DeletedCount int `json:"deletedCount"`
}

type AffiliationDTO struct {
	ID              string `json:"_id"`
	EmployeeEmail   string `json:"employeeEmail"`
	EmployeeName    string `json:"employeeName"`
	HREmail         string `json:"hrEmail"`
	CompanyName     string `json:"companyName"`
	CompanyLogo     string `json:"companyLogo,omitempty"`
	Status          string `json:"status"`
	AffiliationDate string `json:"affiliationDate"`
}

type EmployeeStatsResponse struct {
	PendingRequests []RequestDTO    `json:"pendingRequests"`
	MonthlyRequests []RequestDTO    `json:"monthlyRequests"`
	Affiliation     *AffiliationDTO `json:"affiliation"`
}

type PieSliceDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type HRStatsResponse struct {
	PieData         []PieSliceDTO `json:"pieData"`
	PendingRequests []RequestDTO  `json:"pendingRequests"`
	TotalRequests   int           `json:"totalRequests"`
}

type MyEmployeesResponse struct {
	Employees        []AffiliationDTO `json:"employees"`
	CurrentEmployees int              `json:"currentEmployees"`
	PackageLimit     int              `json:"packageLimit"`
}

type PackageStatusResponse struct {
	CurrentEmployees int `json:"currentEmployees"`
	PackageLimit     int `json:"packageLimit"`
}

type AddToTeamRequest struct {
	EmployeeEmail string `json:"employeeEmail"`
	EmployeeName  string `json:"employeeName"`
}

type AddToTeamResponse struct {
	Success     bool           `json:"success"`
	Affiliation AffiliationDTO `json:"affiliation"`
}

type CheckoutRequest struct {
	Price   float64 `json:"price"`
	Members int     `json:"members"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type ConfirmPaymentRequest struct {
	SessionID string `form:"session_id"`
}

type ConfirmPaymentResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	NewLimit int    `json:"newLimit,omitempty"`
}

type PaymentDTO struct {
	ID            string  `json:"_id"`
	HREmail       string  `json:"hrEmail"`
	TransactionID string  `json:"transactionId"`
	SessionID     string  `json:"sessionId,omitempty"`
	Amount        float64 `json:"amount"`
	AddedSlots    int     `json:"addedSlots"`
	Date          string  `json:"date"`
}

type PackageDTO struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	EmployeeLimit int      `json:"employeeLimit"`
	Price         float64  `json:"price"`
	Features      []string `json:"features"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
