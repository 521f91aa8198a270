// Package catalog holds the static fallback catalog served when the
// product store is unreachable, so list callers always get a response.
package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RAJRS20/Dot-Decimals/internal/domain"
)

// Fixed ids so the fallback serializes through the same Product model as
// live records and stays stable across restarts.
var fallbackIDs = []string{
	"000000000000000000000001",
	"000000000000000000000002",
	"000000000000000000000003",
}

var fallbackCreatedAt = time.Date(2023, time.July, 22, 0, 0, 0, 0, time.UTC)

// Fallback returns the degraded-mode catalog: three sample products with
// hosted images. Callers may append to it freely; a fresh slice is
// returned on every call.
func Fallback() []domain.Product {
	return []domain.Product{
		{
			ID:          mustObjectID(fallbackIDs[0]),
			Name:        "Kaspersky Plus",
			Description: "Reliable antivirus protection",
			Price:       499,
			Image:       imageURL("https://res.cloudinary.com/dmvf35ngw/image/upload/v1690000000/kaspersky.png"),
			CreatedAt:   fallbackCreatedAt,
		},
		{
			ID:          mustObjectID(fallbackIDs[1]),
			Name:        "Dot-Decimals Firewall",
			Description: "Advanced firewall for networks",
			Price:       1299,
			Image:       imageURL("https://res.cloudinary.com/dmvf35ngw/image/upload/v1690000000/firewall.png"),
			CreatedAt:   fallbackCreatedAt,
		},
		{
			ID:          mustObjectID(fallbackIDs[2]),
			Name:        "Enterprise VPN",
			Description: "Secure remote access for teams",
			Price:       2999,
			Image:       imageURL("https://res.cloudinary.com/dmvf35ngw/image/upload/v1690000000/vpn.png"),
			CreatedAt:   fallbackCreatedAt,
		},
	}
}

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func imageURL(url string) *string {
	return &url
}
