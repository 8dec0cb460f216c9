package catalog

import "strings"

// Gym is one partner gym location. Amenities stays a comma-joined string,
// matching the CSV column; the detail view splits it into a list.
type Gym struct {
	ID                 int     `json:"id"`
	PartnerName        string  `json:"partner_name" validate:"required"`
	GymName            string  `json:"gym_name" validate:"required"`
	Address            string  `json:"address" validate:"required"`
	Pincode            string  `json:"pincode" validate:"required,pincode"`
	Latitude           float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude          float64 `json:"longitude" validate:"gte=-180,lte=180"`
	SubscriptionAmount int     `json:"subscription_amount" validate:"gt=0"`
	Amenities          string  `json:"amenities"`
}

// AmenitiesList splits the stored amenities string for presentation.
func (g Gym) AmenitiesList() []string {
	if g.Amenities == "" {
		return []string{}
	}
	parts := strings.Split(g.Amenities, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// GymWithDistance annotates a gym with its distance from a query point,
// in kilometers rounded to two decimals.
type GymWithDistance struct {
	Gym
	Distance float64 `json:"distance"`
}

// PartnerCount is one entry of the partner listing.
type PartnerCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GymDetail is the by-id view: the record plus derived pricing and the
// amenities split into a list.
type GymDetail struct {
	Gym
	SubscriptionPlans map[string]Plan `json:"subscription_plans"`
	Amenities         []string        `json:"amenities_list"`
}

// AddGymRequest is the admin "add gym" payload. Validation runs in the
// service so every violated field is reported at once.
type AddGymRequest struct {
	PartnerName        string  `json:"partner_name"`
	GymName            string  `json:"gym_name"`
	Address            string  `json:"address"`
	Pincode            string  `json:"pincode"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	SubscriptionAmount int     `json:"subscription_amount"`
	Amenities          string  `json:"amenities"`
}

// NearbyQuery parameterizes a proximity search.
type NearbyQuery struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Partner   string  `json:"partner"`
	Limit     int     `json:"limit" validate:"gte=1,lte=50"`
}
