package shopify

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"frame-pricing/internal/domain/pricing"
	"frame-pricing/internal/domain/tempproduct"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"
)

const onlineStorePublication = "Online Store"

const productSetMutation = `mutation createTempProduct($input: ProductSetInput!, $synchronous: Boolean!) {
  productSet(input: $input, synchronous: $synchronous) {
    product {
      id
      title
      handle
      onlineStoreUrl
      variants(first: 1) {
        nodes {
          id
          price
        }
      }
    }
    userErrors {
      field
      message
    }
  }
}`

const productDeleteMutation = `mutation deleteTempProduct($input: ProductDeleteInput!) {
  productDelete(input: $input) {
    deletedProductId
    userErrors {
      field
      message
    }
  }
}`

const publicationsQuery = `query publications {
  publications(first: 25) {
    nodes {
      id
      name
    }
  }
}`

const publishMutation = `mutation publishTempProduct($id: ID!, $input: [PublicationInput!]!) {
  publishablePublish(id: $id, input: $input) {
    publishable {
      ... on Product {
        onlineStoreUrl
      }
    }
    userErrors {
      field
      message
    }
  }
}`

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type productSetData struct {
	ProductSet struct {
		Product *struct {
			ID             string  `json:"id"`
			Title          string  `json:"title"`
			Handle         string  `json:"handle"`
			OnlineStoreURL *string `json:"onlineStoreUrl"`
			Variants       struct {
				Nodes []struct {
					ID    string `json:"id"`
					Price string `json:"price"`
				} `json:"nodes"`
			} `json:"variants"`
		} `json:"product"`
		UserErrors []userError `json:"userErrors"`
	} `json:"productSet"`
}

type productDeleteData struct {
	ProductDelete struct {
		DeletedProductID *string     `json:"deletedProductId"`
		UserErrors       []userError `json:"userErrors"`
	} `json:"productDelete"`
}

type publicationsData struct {
	Publications struct {
		Nodes []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"publications"`
}

type publishData struct {
	PublishablePublish struct {
		Publishable *struct {
			OnlineStoreURL *string `json:"onlineStoreUrl"`
		} `json:"publishable"`
		UserErrors []userError `json:"userErrors"`
	} `json:"publishablePublish"`
}

// Gateway implements shared.ProductGateway with the admin GraphQL API.
type Gateway struct{}

var _ shared.ProductGateway = (*Gateway)(nil)

func NewGateway() *Gateway {
	return &Gateway{}
}

func (g *Gateway) CreateProduct(ctx context.Context, admin shared.AdminAPI, in shared.CreateProductInput) (*shared.RemoteProduct, error) {
	var data productSetData
	if err := execute(ctx, admin, "productSet", productSetMutation, map[string]any{
		"input":       productSetInput(in),
		"synchronous": true,
	}, &data); err != nil {
		return nil, err
	}

	payload := data.ProductSet
	if len(payload.UserErrors) > 0 {
		return nil, errs.NewRemoteMutationError("productSet", messages(payload.UserErrors))
	}
	if payload.Product == nil || len(payload.Product.Variants.Nodes) == 0 {
		return nil, errs.Mark(errs.New("productSet returned no product or variant"), errs.ErrRemoteEmptyResult)
	}

	product := payload.Product
	out := &shared.RemoteProduct{
		ProductID: LegacyID(product.ID),
		VariantID: LegacyID(product.Variants.Nodes[0].ID),
		Title:     product.Title,
		Handle:    product.Handle,
	}
	if product.OnlineStoreURL != nil {
		out.PublicURL = *product.OnlineStoreURL
	}

	if url, err := g.publish(ctx, admin, product.ID); err != nil {
		slog.Warn("temporary product not published to online store",
			"product_id", out.ProductID,
			"error", err)
	} else if url != "" {
		out.PublicURL = url
	}

	return out, nil
}

func (g *Gateway) DeleteProduct(ctx context.Context, admin shared.AdminAPI, productID string) (string, error) {
	var data productDeleteData
	if err := execute(ctx, admin, "productDelete", productDeleteMutation, map[string]any{
		"input": map[string]any{"id": ProductGID(productID)},
	}, &data); err != nil {
		return "", err
	}

	payload := data.ProductDelete
	if len(payload.UserErrors) > 0 {
		return "", errs.NewRemoteMutationError("productDelete", messages(payload.UserErrors))
	}
	if payload.DeletedProductID == nil {
		return "", errs.Mark(errs.New("productDelete returned no id"), errs.ErrRemoteEmptyResult)
	}
	return *payload.DeletedProductID, nil
}

// BulkDelete deletes one id at a time. Each id ends up in exactly one of the result lists.
func (g *Gateway) BulkDelete(ctx context.Context, admin shared.AdminAPI, productIDs []string) shared.BulkDeleteResult {
	result := shared.BulkDeleteResult{
		Succeeded: make([]string, 0, len(productIDs)),
		Failed:    make([]shared.DeleteFailure, 0),
	}
	for _, id := range productIDs {
		if _, err := g.DeleteProduct(ctx, admin, id); err != nil {
			result.Failed = append(result.Failed, shared.DeleteFailure{ID: id, Message: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result
}

func (g *Gateway) publish(ctx context.Context, admin shared.AdminAPI, productGID string) (string, error) {
	var pubs publicationsData
	if err := execute(ctx, admin, "publications", publicationsQuery, nil, &pubs); err != nil {
		return "", err
	}

	var publicationID string
	for _, p := range pubs.Publications.Nodes {
		if p.Name == onlineStorePublication {
			publicationID = p.ID
			break
		}
	}
	if publicationID == "" {
		return "", errs.Newf("no %q publication available", onlineStorePublication)
	}

	var data publishData
	if err := execute(ctx, admin, "publishablePublish", publishMutation, map[string]any{
		"id":    productGID,
		"input": []map[string]any{{"publicationId": publicationID}},
	}, &data); err != nil {
		return "", err
	}
	if len(data.PublishablePublish.UserErrors) > 0 {
		return "", errs.NewRemoteMutationError("publishablePublish", messages(data.PublishablePublish.UserErrors))
	}
	if p := data.PublishablePublish.Publishable; p != nil && p.OnlineStoreURL != nil {
		return *p.OnlineStoreURL, nil
	}
	return "", nil
}

func productSetInput(in shared.CreateProductInput) map[string]any {
	input := map[string]any{
		"title":           in.Title,
		"descriptionHtml": in.DescriptionHTML,
		"productType":     tempproduct.ProductType,
		"vendor":          tempproduct.Vendor,
		"tags":            tempproduct.Tags(in.Spec.Material()),
		"status":          "ACTIVE",
		"productOptions": []map[string]any{{
			"name":   "Title",
			"values": []map[string]any{{"name": "Default Title"}},
		}},
		"variants": []map[string]any{{
			"optionValues":    []map[string]any{{"optionName": "Title", "name": "Default Title"}},
			"price":           pricing.FormatPrice(in.Price),
			"inventoryPolicy": "CONTINUE",
		}},
	}

	if in.ImageURL != "" {
		if url, ok := tempproduct.NormalizeImageURL(in.ImageURL); ok {
			input["files"] = []map[string]any{{
				"originalSource": url,
				"contentType":    "IMAGE",
				"alt":            in.Title,
			}}
		} else {
			slog.Warn("dropping unsupported image url", "image_url", in.ImageURL)
		}
	}
	return input
}

func execute(ctx context.Context, admin shared.AdminAPI, op, query string, vars map[string]any, out any) error {
	resp, err := admin.Execute(ctx, shared.AdminRequest{Query: query, Variables: vars})
	if err != nil {
		return errs.Wrapf(err, "%s request", op)
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return errs.NewRemoteMutationError(op, msgs)
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return errs.Mark(errs.Newf("%s returned no data", op), errs.ErrRemoteEmptyResult)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s payload", op), errs.ErrRemoteTransport)
	}
	return nil
}

func messages(ues []userError) []string {
	out := make([]string, 0, len(ues))
	for _, ue := range ues {
		if len(ue.Field) > 0 {
			out = append(out, strings.Join(ue.Field, ".")+": "+ue.Message)
			continue
		}
		out = append(out, ue.Message)
	}
	return out
}
