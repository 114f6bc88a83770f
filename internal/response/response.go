package response

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	// Machine readable error code
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human readable message
	// example: submitted data is invalid
	Message string `json:"message"`

	// Optional details about the error
	// example: email must be a valid email address
	Details string `json:"details,omitempty"`
}

// InstallationsResponse documents the grouped facilities envelope.
type InstallationsResponse struct {
	Glissades               []map[string]interface{} `json:"glissades"`
	InstallationsAquatiques []map[string]interface{} `json:"installations_aquatiques"`
	Patinoires              []map[string]interface{} `json:"patinoires"`
}

// SubscriptionRequest documents the body of POST /api/abonnement.
type SubscriptionRequest struct {
	FullName         string `json:"full_name" example:"Marie Tremblay"`
	Email            string `json:"email" example:"marie@example.com"`
	BoroughsToFollow []uint `json:"boroughs_to_follow" example:"1,4"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"ok"`
}
