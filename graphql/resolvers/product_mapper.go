package resolvers

import (
	"fmt"
	"log"
	"reflect"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/mitchellh/mapstructure"

	gqlmodels "shopsearch.GO/graphql/models"
	catalogEntity "shopsearch.GO/model/entity/catalog"
)

func toID(v uint) gql.ID {
	return gql.ID(strconv.FormatUint(uint64(v), 10))
}

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return fmt.Sprint(data), nil
		}
		return data, nil
	}
}

// productToModel flattens the entity through mapstructure so custom packages
// can reuse the same flat form when they extend the product type.
func productToModel(p *catalogEntity.Product) *gqlmodels.Product {
	flat := map[string]interface{}{
		"entity_id":   p.EntityID,
		"sku":         p.SKU,
		"name":        p.Name,
		"url_key":     p.URLKey,
		"price":       p.Price,
		"final_price": p.EffectivePrice(),
		"popularity":  p.Popularity,
	}
	if p.Description != "" {
		flat["description"] = p.Description
	}
	if p.Image != "" {
		flat["image"] = p.Image
	}

	var prod gqlmodels.Product
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       numberToStringHook(),
		Result:           &prod,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		log.Printf("graphql: product decoder: %v", err)
		return &gqlmodels.Product{}
	}
	if err := dec.Decode(flat); err != nil {
		log.Printf("graphql: product %d map: %v", p.EntityID, err)
	}
	return &prod
}
