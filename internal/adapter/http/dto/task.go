package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Libelle     string  `json:"libelle"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	AudioURL    *string `json:"audioUrl,omitempty"`
	DateDebut   *string `json:"dateDebut,omitempty"`
	DateFin     *string `json:"dateFin,omitempty"`
	UserID      uint64  `json:"userId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CreateTaskForm is bound from the multipart form of POST /taches.
// The optional audio clip travels as the "audio" file part.
type CreateTaskForm struct {
	Libelle     string  `form:"libelle"`
	Description *string `form:"description"`
	Status      *string `form:"status"`
	DateDebut   *string `form:"dateDebut"`
	DateFin     *string `form:"dateFin"`
}

// UpdateTaskRequest is the partial JSON body of PUT /taches/:id.
type UpdateTaskRequest struct {
	Libelle     *string `json:"libelle"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	AudioURL    *string `json:"audioUrl"`
	DateDebut   *string `json:"dateDebut"`
	DateFin     *string `json:"dateFin"`
}
