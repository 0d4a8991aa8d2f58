package session

// Page names one screen of the navigation state machine.
type Page string

const (
	PageLogin         Page = "login"
	PageRegister      Page = "register"
	PageBrowse        Page = "browse"
	PageAddProduct    Page = "addProduct"
	PageMyListings    Page = "myListings"
	PageEditProduct   Page = "editProduct"
	PageCart          Page = "cart"
	PagePurchases     Page = "purchases"
	PageDashboard     Page = "dashboard"
	PageProductDetail Page = "productDetail"
)

// gatedPages are reachable only while a user is signed in.
var gatedPages = map[Page]bool{
	PageBrowse:        true,
	PageAddProduct:    true,
	PageMyListings:    true,
	PageEditProduct:   true,
	PageCart:          true,
	PagePurchases:     true,
	PageDashboard:     true,
	PageProductDetail: true,
}
