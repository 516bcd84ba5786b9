package schedule

import "encoding/json"

// Payload is the kind-specific body of a schedule. The wire column `kind`
// is the tag; the payload JSON holds only the variant's own fields.
type Payload interface {
	PayloadKind() Kind
}

type Person struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
}

type Vehicle struct {
	Plate string `json:"plate"`
	Model string `json:"model,omitempty"`
}

// ServiceRequestPayload covers short-duration service visits by an outside
// company (maintenance, repairs, installations).
type ServiceRequestPayload struct {
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Workers     []Person `json:"workers,omitempty"`
	Vehicle     *Vehicle `json:"vehicle,omitempty"`
}

func (ServiceRequestPayload) PayloadKind() Kind { return KindServiceRequest }

// EarlyAccessPayload covers access outside regular hours (early entry,
// weekends).
type EarlyAccessPayload struct {
	Date      string `json:"date"`
	EntryTime string `json:"entry_time"`
	Reason    string `json:"reason"`
	Unit      string `json:"unit,omitempty"`
}

func (EarlyAccessPayload) PayloadKind() Kind { return KindEarlyAccess }

// DeliveryPayload covers material deliveries and releases at the gate.
type DeliveryPayload struct {
	Carrier     string   `json:"carrier"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	TimeWindow  string   `json:"time_window,omitempty"`
	Vehicle     *Vehicle `json:"vehicle,omitempty"`
}

func (DeliveryPayload) PayloadKind() Kind { return KindDelivery }

// VisitPayload covers visitor entries, optionally with companions.
type VisitPayload struct {
	VisitorName string   `json:"visitor_name"`
	Document    string   `json:"document,omitempty"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time,omitempty"`
	Companions  []Person `json:"companions,omitempty"`
	Vehicle     *Vehicle `json:"vehicle,omitempty"`
}

func (VisitPayload) PayloadKind() Kind { return KindVisit }

// IntegrationPayload covers onboarding of a contractor crew before their
// first day on site.
type IntegrationPayload struct {
	Company string   `json:"company"`
	Date    string   `json:"date"`
	Workers []Person `json:"workers,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

func (IntegrationPayload) PayloadKind() Kind { return KindIntegration }

func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, ErrNilPayload
	}
	return json.Marshal(p)
}

// DecodePayload dispatches on kind; unknown kinds are a hard error so a new
// category cannot silently round-trip as an empty payload.
func DecodePayload(kind Kind, raw []byte) (Payload, error) {
	switch kind {
	case KindServiceRequest:
		var p ServiceRequestPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindEarlyAccess:
		var p EarlyAccessPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindDelivery:
		var p DeliveryPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindVisit:
		var p VisitPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindIntegration:
		var p IntegrationPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, ErrInvalidKind
	}
}
