package petpooja

import "encoding/json"

// MenuPayload is the body returned by the vendor menu endpoint and the
// petpoojaData field accepted by the menu import trigger.
type MenuPayload struct {
	Success          Marker           `json:"success"`
	Message          Text             `json:"message"`
	Restaurants      []Restaurant     `json:"restaurants"`
	OrderTypes       []OrderType      `json:"ordertypes"`
	Categories       []Category       `json:"categories"`
	ParentCategories []ParentCategory `json:"parentcategories"`
	Items            []Item           `json:"items"`
	Variations       []Variation      `json:"variations"`
	AddonGroups      []AddonGroup     `json:"addongroups"`
	Attributes       []Attribute      `json:"attributes"`
	Discounts        []Discount       `json:"discounts"`
	Taxes            []Tax            `json:"taxes"`
	ServerDateTime   Text             `json:"serverdatetime"`
}

type Restaurant struct {
	RestaurantID ID                `json:"restaurantid"`
	Active       Flag              `json:"active"`
	Details      RestaurantDetails `json:"details"`
}

type RestaurantDetails struct {
	Name                   Text   `json:"restaurantname"`
	Address                Text   `json:"address"`
	Contact                Text   `json:"contact"`
	Latitude               Amount `json:"latitude"`
	Longitude              Amount `json:"longitude"`
	Landmark               Text   `json:"landmark"`
	City                   Text   `json:"city"`
	State                  Text   `json:"state"`
	Country                Text   `json:"country"`
	CurrencyHTML           Text   `json:"currency_html"`
	MinimumOrderAmount     Amount `json:"minimumorderamount"`
	MinimumPrepTime        Count  `json:"minimum_prep_time"`
	DeliveryCharge         Amount `json:"deliverycharge"`
	ServiceChargeOn        Text   `json:"sc_applicable_on"`
	ServiceChargeType      Text   `json:"sc_type"`
	ServiceChargeValue     Amount `json:"sc_value"`
	PackagingCharge        Amount `json:"packaging_charge"`
	PackagingChargeType    Text   `json:"packaging_charge_type"`
	PackagingApplicableOn  Text   `json:"packaging_applicable_on"`
	CalculateTaxOnPacking  Flag   `json:"calculatetaxonpacking"`
	CalculateTaxOnDelivery Flag   `json:"calculatetaxondelivery"`
	UnderMaintenance       Flag   `json:"maintenance"`
}

type OrderType struct {
	ID   ID   `json:"ordertypeid"`
	Name Text `json:"ordertype"`
}

type ParentCategory struct {
	ID       ID   `json:"id"`
	Name     Text `json:"name"`
	Rank     Rank `json:"rank"`
	ImageURL Text `json:"image_url"`
	Status   Flag `json:"status"`
}

type Category struct {
	ID               ID   `json:"categoryid"`
	Active           Flag `json:"active"`
	Rank             Rank `json:"categoryrank"`
	ParentCategoryID ID   `json:"parent_category_id"`
	Name             Text `json:"categoryname"`
	Timings          Text `json:"categorytimings"`
	ImageURL         Text `json:"category_image_url"`
}

type Item struct {
	ID              ID              `json:"itemid"`
	AllowVariation  Flag            `json:"itemallowvariation"`
	Rank            Rank            `json:"itemrank"`
	CategoryID      ID              `json:"item_categoryid"`
	OrderTypes      List            `json:"item_ordertype"`
	PackingCharges  Amount          `json:"item_packingcharges"`
	AllowAddon      Flag            `json:"itemallowaddon"`
	Favorite        Flag            `json:"item_favorite"`
	InStock         Text            `json:"in_stock"`
	Variations      []ItemVariation `json:"variation"`
	Addons          []ItemAddon     `json:"addon"`
	Name            Text            `json:"itemname"`
	AttributeID     ID              `json:"item_attributeid"`
	Description     Text            `json:"itemdescription"`
	PreparationTime Count           `json:"minimumpreparationtime"`
	Price           Amount          `json:"price"`
	Active          Flag            `json:"active"`
	ImageURL        Text            `json:"item_image_url"`
	Taxes           List            `json:"item_tax"`
	Tags            List            `json:"item_tags"`
	Nutrition       json.RawMessage `json:"nutrition"`
}

type ItemVariation struct {
	ID             ID     `json:"id"`
	VariationID    ID     `json:"variationid"`
	Name           Text   `json:"name"`
	GroupName      Text   `json:"groupname"`
	Price          Amount `json:"price"`
	Active         Flag   `json:"active"`
	PackingCharges Amount `json:"item_packingcharges"`
	Rank           Rank   `json:"variationrank"`
}

// ItemAddon links an item to an addon group with its selection bounds.
type ItemAddon struct {
	GroupID      ID    `json:"addon_group_id"`
	SelectionMin Count `json:"addon_item_selection_min"`
	SelectionMax Count `json:"addon_item_selection_max"`
}

type Variation struct {
	ID        ID   `json:"variationid"`
	Name      Text `json:"name"`
	GroupName Text `json:"groupname"`
	Status    Flag `json:"status"`
}

type AddonGroup struct {
	ID     ID          `json:"addongroupid"`
	Rank   Rank        `json:"addongroup_rank"`
	Active Flag        `json:"active"`
	Items  []AddonItem `json:"addongroupitems"`
	Name   Text        `json:"addongroup_name"`
}

type AddonItem struct {
	ID     ID     `json:"addonitemid"`
	Name   Text   `json:"addonitem_name"`
	Price  Amount `json:"addonitem_price"`
	Active Flag   `json:"active"`
	Rank   Rank   `json:"addonitem_rank"`
}

type Attribute struct {
	ID     ID   `json:"attributeid"`
	Name   Text `json:"attribute"`
	Active Flag `json:"active"`
}

type Discount struct {
	ID            ID     `json:"discountid"`
	Name          Text   `json:"discountname"`
	Type          Count  `json:"discounttype"`
	Value         Amount `json:"discount"`
	OrderTypes    List   `json:"discountordertype"`
	ApplicableOn  Text   `json:"discountapplicableon"`
	Days          Text   `json:"discountdays"`
	AvailableFrom Text   `json:"availablefrom"`
	AvailableTill Text   `json:"availabletill"`
	Starts        Text   `json:"discountstarts"`
	Ends          Text   `json:"discountends"`
	MinAmount     Amount `json:"discountminamount"`
	MaxAmount     Amount `json:"discountmaxamount"`
	HasCoupon     Flag   `json:"discounthascoupon"`
	OnBill        Flag   `json:"discountonbill"`
	Active        Flag   `json:"active"`
}

type Tax struct {
	ID          ID     `json:"taxid"`
	Name        Text   `json:"taxname"`
	Rate        Amount `json:"tax"`
	Type        Count  `json:"taxtype"`
	OrderTypes  List   `json:"tax_ordertype"`
	Active      Flag   `json:"active"`
	CoreOrTotal Count  `json:"tax_coreortotal"`
	Rank        Rank   `json:"rank"`
}

// CategoryListPayload is the body returned by the vendor category endpoint.
type CategoryListPayload struct {
	Success          Marker           `json:"success"`
	Message          Text             `json:"message"`
	Categories       []Category       `json:"categories"`
	ParentCategories []ParentCategory `json:"parentcategories"`
}

// Credentials identify a restaurant on every outbound vendor call.
type Credentials struct {
	AppKey       string `json:"app_key"`
	AppSecret    string `json:"app_secret"`
	AccessToken  string `json:"access_token"`
	RestaurantID string `json:"restaurant_id"`
}

type MenuRequest struct {
	Credentials
	RestID string `json:"restID"`
}
