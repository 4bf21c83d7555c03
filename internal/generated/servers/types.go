package servers

// Error kinds carried by Error.Error.
const (
	ErrorKindValidation = "VALIDATION_ERROR"
	ErrorKindDomain     = "DOMAIN_ERROR"
	ErrorKindBusiness   = "BUSINESS_ERROR"
	ErrorKindInternal   = "INTERNAL_ERROR"
)

// Error defines model for Error.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateCapacityRequest defines model for CreateCapacityRequest.
type CreateCapacityRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	TechnologyNames []string `json:"technologyNames" validate:"required"`
}

// AssociateCapacityWithBootcampRequest defines model for AssociateCapacityWithBootcampRequest.
type AssociateCapacityWithBootcampRequest struct {
	CapacityId int64 `json:"capacityId" validate:"required,gt=0"`
	BootcampId int64 `json:"bootcampId" validate:"required,gt=0"`
}

// ListCapacitiesParams defines parameters for ListCapacities.
type ListCapacitiesParams struct {
	Page   *int    `form:"page,omitempty" json:"page,omitempty"`
	Size   *int    `form:"size,omitempty" json:"size,omitempty"`
	SortBy *string `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	Order  *string `form:"order,omitempty" json:"order,omitempty"`
}

// CreateCapacityJSONRequestBody defines body for CreateCapacity for application/json ContentType.
type CreateCapacityJSONRequestBody = CreateCapacityRequest

// AssociateCapacityWithBootcampJSONRequestBody defines body for AssociateCapacityWithBootcamp for application/json ContentType.
type AssociateCapacityWithBootcampJSONRequestBody = AssociateCapacityWithBootcampRequest
