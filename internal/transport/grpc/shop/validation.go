package shop

import (
	"fmt"
)

func validateAddCartItem(req *AddCartItemRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.CustomerID == "" {
		return fmt.Errorf("customer_id is required")
	}
	if req.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

func validateCheckout(req *CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.CustomerID == "" {
		return fmt.Errorf("customer_id is required")
	}
	if req.PaymentMethod == "" {
		return fmt.Errorf("payment_method is required")
	}
	if req.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if req.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if req.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

func validateCreateProduct(req *CreateProductRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Category == "" {
		return fmt.Errorf("category is required")
	}
	if req.PriceDen == 0 {
		return fmt.Errorf("price denominator must be non-zero")
	}
	return nil
}

func validateUpdateProduct(req *UpdateProductRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	// At least one field should be present
	if req.Name == nil && req.Category == nil && req.PriceNum == nil &&
		!req.StockSet && req.IsPreorder == nil && req.IsActive == nil &&
		req.Sizes == nil && req.Colors == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	if (req.PriceNum == nil) != (req.PriceDen == nil) {
		return fmt.Errorf("price numerator and denominator must be provided together")
	}
	if req.PriceDen != nil && *req.PriceDen == 0 {
		return fmt.Errorf("price denominator must be non-zero")
	}
	return nil
}
