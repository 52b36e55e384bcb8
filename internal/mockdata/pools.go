package mockdata

// Fixed pools the generators draw from. Changing pool contents or order
// changes every user's synthetic history, so treat these as frozen.

type catalogEntry struct {
	Name  string
	Image string
}

var catalogPool = []catalogEntry{
	{Name: "Wireless Headphones", Image: "https://images.shopfront.dev/products/wireless-headphones.jpg"},
	{Name: "Smart Watch", Image: "https://images.shopfront.dev/products/smart-watch.jpg"},
	{Name: "Bluetooth Speaker", Image: "https://images.shopfront.dev/products/bluetooth-speaker.jpg"},
	{Name: "Laptop Backpack", Image: "https://images.shopfront.dev/products/laptop-backpack.jpg"},
	{Name: "Mechanical Keyboard", Image: "https://images.shopfront.dev/products/mechanical-keyboard.jpg"},
	{Name: "Wireless Mouse", Image: "https://images.shopfront.dev/products/wireless-mouse.jpg"},
	{Name: "USB-C Hub", Image: "https://images.shopfront.dev/products/usb-c-hub.jpg"},
	{Name: "Desk Lamp", Image: "https://images.shopfront.dev/products/desk-lamp.jpg"},
	{Name: "Running Shoes", Image: "https://images.shopfront.dev/products/running-shoes.jpg"},
	{Name: "Yoga Mat", Image: "https://images.shopfront.dev/products/yoga-mat.jpg"},
	{Name: "Water Bottle", Image: "https://images.shopfront.dev/products/water-bottle.jpg"},
	{Name: "Sunglasses", Image: "https://images.shopfront.dev/products/sunglasses.jpg"},
	{Name: "Phone Case", Image: "https://images.shopfront.dev/products/phone-case.jpg"},
	{Name: "Portable Charger", Image: "https://images.shopfront.dev/products/portable-charger.jpg"},
	{Name: "Coffee Mug", Image: "https://images.shopfront.dev/products/coffee-mug.jpg"},
}

type poolAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

var addressPool = []poolAddress{
	{Street: "123 Maple Street", City: "Springfield", State: "IL", ZipCode: "62704"},
	{Street: "456 Oak Avenue", City: "Portland", State: "OR", ZipCode: "97201"},
	{Street: "789 Pine Road", City: "Austin", State: "TX", ZipCode: "73301"},
	{Street: "321 Cedar Lane", City: "Denver", State: "CO", ZipCode: "80202"},
	{Street: "654 Birch Boulevard", City: "Seattle", State: "WA", ZipCode: "98101"},
	{Street: "987 Willow Way", City: "Nashville", State: "TN", ZipCode: "37201"},
	{Street: "246 Elm Court", City: "Raleigh", State: "NC", ZipCode: "27601"},
	{Street: "135 Aspen Drive", City: "Phoenix", State: "AZ", ZipCode: "85001"},
}

var addressLabels = []string{"Home", "Work", "Office", "Vacation Home"}

// Weighted status pool for synthetic orders, skewed toward Delivered so
// a first-time user's history looks lived-in.
var orderStatusPool = []string{
	"Delivered", "Delivered", "Delivered", "Delivered", "Delivered", "Delivered",
	"Shipped", "Shipped",
	"Processing",
	"Cancelled",
}

type notificationTemplate struct {
	Title   string
	Message string
}

var orderNotifications = []notificationTemplate{
	{Title: "Order confirmed", Message: "Your order has been confirmed and is being prepared."},
	{Title: "Order shipped", Message: "Good news! Your order is on its way."},
	{Title: "Out for delivery", Message: "Your package is out for delivery and will arrive today."},
	{Title: "Order delivered", Message: "Your order was delivered. We hope you love it!"},
	{Title: "Delivery update", Message: "Your delivery window has been updated. Track your package for details."},
}

var promoNotifications = []notificationTemplate{
	{Title: "Flash sale", Message: "Up to 40% off electronics for the next 24 hours."},
	{Title: "Weekend deal", Message: "Free shipping on all orders this weekend only."},
	{Title: "Just for you", Message: "We picked a few things we think you'll like. Take a look!"},
	{Title: "Price drop", Message: "An item on your wishlist just dropped in price."},
	{Title: "Member reward", Message: "You've earned a reward. Apply it at your next checkout."},
}

var systemNotifications = []notificationTemplate{
	{Title: "Security check", Message: "We noticed a new sign-in to your account. Was this you?"},
	{Title: "Profile reminder", Message: "Complete your profile to get better recommendations."},
	{Title: "Policy update", Message: "We've updated our terms of service and privacy policy."},
	{Title: "New feature", Message: "You can now track all your deliveries from the dashboard."},
}
