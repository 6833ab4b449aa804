package entity

// GenerateTemplateRequest is the body of POST /templates/generate. Field
// names mirror the questionnaire columns so the wizard can forward its
// answers verbatim.
type GenerateTemplateRequest struct {
	ClientName     string    `json:"client_name"`
	CompanyName    string    `json:"company_name"`
	BusinessType   string    `json:"business_type"`
	Objective      Objective `json:"objective"`
	OfferDetails   string    `json:"offer_details,omitempty"`
	CompanyHistory string    `json:"company_history,omitempty"`
}

func (r *GenerateTemplateRequest) ToInput() GenerationInput {
	return GenerationInput{
		ClientName:     r.ClientName,
		CompanyName:    r.CompanyName,
		BusinessType:   r.BusinessType,
		Objective:      r.Objective,
		OfferDetails:   r.OfferDetails,
		CompanyHistory: r.CompanyHistory,
	}
}

type GenerateTemplateResponse struct {
	Template *GeneratedTemplate `json:"template"`
}

// GenerateContentRequest is the free-form editor variant: a raw prompt that
// still must produce the canonical template shape.
type GenerateContentRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateContentResponse struct {
	Content *GeneratedTemplate `json:"content"`
}

// GenerateImageRequest forwards a prompt to the image inference provider.
type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateImageResponse carries the generated image as a base64 payload;
// object storage is owned by the surrounding application.
type GenerateImageResponse struct {
	ContentType string `json:"content_type"`
	ImageBase64 string `json:"image_base64"`
}

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "md"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) Validate() error {
	switch f {
	case FormatMarkdown, FormatPDF:
		return nil
	default:
		return ErrInvalidFormat
	}
}
