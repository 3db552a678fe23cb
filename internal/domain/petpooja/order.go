package petpooja

import "encoding/json"

// Order type codes of the save_order endpoint.
const (
	OrderTypeDelivery = "H"
	OrderTypePickup   = "P"
	OrderTypeDineIn   = "D"
)

type SaveOrderRequest struct {
	Credentials
	OrderInfo OrderInfoEnvelope `json:"orderinfo"`
}

type OrderInfoEnvelope struct {
	OrderInfo  OrderInfo `json:"OrderInfo"`
	UDID       string    `json:"udid"`
	DeviceType string    `json:"device_type"`
}

type OrderInfo struct {
	Restaurant RestaurantBlock `json:"Restaurant"`
	Customer   CustomerBlock   `json:"Customer"`
	Order      OrderBlock      `json:"Order"`
	OrderItem  OrderItemBlock  `json:"OrderItem"`
	Tax        TaxBlock        `json:"Tax"`
	Discount   DiscountBlock   `json:"Discount"`
}

type RestaurantBlock struct {
	Details RestaurantInfo `json:"details"`
}

type RestaurantInfo struct {
	Name               string `json:"res_name"`
	Address            string `json:"address"`
	ContactInformation string `json:"contact_information"`
	RestID             string `json:"restID"`
}

type CustomerBlock struct {
	Details CustomerInfo `json:"details"`
}

type CustomerInfo struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type OrderBlock struct {
	Details OrderDetails `json:"details"`
}

type OrderDetails struct {
	OrderID         string `json:"orderID"`
	PreorderDate    string `json:"preorder_date"`
	PreorderTime    string `json:"preorder_time"`
	ServiceCharge   string `json:"service_charge"`
	SCTaxAmount     string `json:"sc_tax_amount"`
	DeliveryCharges string `json:"delivery_charges"`
	DCTaxAmount     string `json:"dc_tax_amount"`
	PackingCharges  string `json:"packing_charges"`
	PCTaxAmount     string `json:"pc_tax_amount"`
	OrderType       string `json:"order_type"`
	AdvancedOrder   string `json:"advanced_order"`
	PaymentType     string `json:"payment_type"`
	TableNo         string `json:"table_no"`
	NoOfPersons     string `json:"no_of_persons"`
	DiscountTotal   string `json:"discount_total"`
	TaxTotal        string `json:"tax_total"`
	DiscountType    string `json:"discount_type"`
	Total           string `json:"total"`
	Description     string `json:"description"`
	CreatedOn       string `json:"created_on"`
	EnableDelivery  int    `json:"enable_delivery"`
	MinPrepTime     int    `json:"min_prep_time"`
	CallbackURL     string `json:"callback_url"`
}

type OrderItemBlock struct {
	Details []OrderItemLine `json:"details"`
}

type OrderItemLine struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	GSTLiability  string        `json:"gst_liability"`
	ItemTax       []ItemTaxLine `json:"item_tax"`
	ItemDiscount  string        `json:"item_discount"`
	Price         string        `json:"price"`
	FinalPrice    string        `json:"final_price"`
	Quantity      string        `json:"quantity"`
	Description   string        `json:"description"`
	VariationName string        `json:"variation_name"`
	VariationID   string        `json:"variation_id"`
	AddonItem     AddonBlock    `json:"AddonItem"`
}

type ItemTaxLine struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type AddonBlock struct {
	Details []AddonLine `json:"details"`
}

type AddonLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"group_name"`
	Price     string `json:"price"`
	GroupID   string `json:"group_id"`
	Quantity  string `json:"quantity"`
}

type TaxBlock struct {
	Details []TaxLine `json:"details"`
}

type TaxLine struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Price string `json:"price"`
	Tax   string `json:"tax"`
}

type DiscountBlock struct {
	Details []DiscountLine `json:"details"`
}

type DiscountLine struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Price string `json:"price"`
}

type SaveOrderResponse struct {
	Success          Marker          `json:"success"`
	Message          Text            `json:"message"`
	RestID           ID              `json:"restID"`
	ClientOrderID    ID              `json:"clientOrderID"`
	OrderID          ID              `json:"orderID"`
	WaitingTime      Text            `json:"waitingTime"`
	ValidationErrors json.RawMessage `json:"validation_errors,omitempty"`
}

// Accepted reports whether the vendor took the order and assigned it an id.
func (r *SaveOrderResponse) Accepted() bool {
	return bool(r.Success) && !r.OrderID.IsZero()
}
