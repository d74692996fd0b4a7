package grpc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"products_service/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// DecodeStruct unmarshals a Struct into dst through its JSON form, so the
// json tags of the domain DTOs apply on the wire.
func DecodeStruct(s *structpb.Struct, dst interface{}) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	raw, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("could not decode payload: %w", err)
	}
	return nil
}

// EncodeStruct is the inverse of DecodeStruct.
func EncodeStruct(src interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("could not encode payload: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("could not decode payload: %w", err)
	}
	return s, nil
}

// Struct numbers are doubles, so row ids travel as decimal strings.
type productMessage struct {
	ID int64 `json:"id,string"`
	domain.Product
}

type pageMessage struct {
	Data []productMessage `json:"data"`
	Meta domain.PageMeta  `json:"meta"`
}

// UpdateProductMessage is the UpdateProduct payload: the row id plus the patch
// fields of domain.UpdateProductRequest. An id inside the patch is shadowed.
type UpdateProductMessage struct {
	ID int64 `json:"id,string"`
	domain.UpdateProductRequest
}

func productFields(p *domain.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":        strconv.FormatInt(p.ID, 10),
		"name":      p.Name,
		"price":     p.Price,
		"available": p.Available,
		"createdAt": p.CreatedAt.Format(time.RFC3339Nano),
		"updatedAt": p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func ProductToStruct(p *domain.Product) (*structpb.Struct, error) {
	return structpb.NewStruct(productFields(p))
}

func PageToStruct(page *domain.ProductPage) (*structpb.Struct, error) {
	data := make([]interface{}, 0, len(page.Data))
	for i := range page.Data {
		data = append(data, productFields(&page.Data[i]))
	}
	return structpb.NewStruct(map[string]interface{}{
		"data": data,
		"meta": map[string]interface{}{
			"total":    page.Meta.Total,
			"page":     page.Meta.Page,
			"lastPage": page.Meta.LastPage,
		},
	})
}

func StructToProduct(s *structpb.Struct) (*domain.Product, error) {
	var msg productMessage
	if err := DecodeStruct(s, &msg); err != nil {
		return nil, err
	}
	product := msg.Product
	product.ID = msg.ID
	return &product, nil
}

func StructToPage(s *structpb.Struct) (*domain.ProductPage, error) {
	var msg pageMessage
	if err := DecodeStruct(s, &msg); err != nil {
		return nil, err
	}
	page := &domain.ProductPage{
		Data: make([]domain.Product, 0, len(msg.Data)),
		Meta: msg.Meta,
	}
	for _, m := range msg.Data {
		product := m.Product
		product.ID = m.ID
		page.Data = append(page.Data, product)
	}
	return page, nil
}

func UpdateRequestToStruct(id int64, req domain.UpdateProductRequest) (*structpb.Struct, error) {
	req.ID = nil
	return EncodeStruct(UpdateProductMessage{ID: id, UpdateProductRequest: req})
}
