package reviews

// Review text pools, keyed by star tier within each product category.
// Like the mockdata pools, contents and order are frozen: reordering
// changes every product's generated reviews.

type reviewTemplate struct {
	Title   string
	Comment string
}

type templateSet map[int][]reviewTemplate

func templatesFor(category string) templateSet {
	switch category {
	case "Electronics":
		return electronicsTemplates
	case "Fashion":
		return fashionTemplates
	case "Home & Garden":
		return homeGardenTemplates
	case "Sports":
		return sportsTemplates
	default:
		return genericTemplates
	}
}

var electronicsTemplates = templateSet{
	5: {
		{Title: "Exceeded every expectation", Comment: "Setup took minutes and the build quality is excellent. Battery life is noticeably better than advertised."},
		{Title: "Best tech purchase this year", Comment: "Crisp performance, no lag, and it pairs instantly with all my devices. Worth every penny."},
		{Title: "Flawless so far", Comment: "Three months in and it still works like day one. The little details in the design show real care."},
	},
	4: {
		{Title: "Very solid device", Comment: "Does everything it promises. Knocked one star off because the companion app feels clunky."},
		{Title: "Great value for the price", Comment: "Performance is close to premium brands at half the cost. Charging could be faster."},
		{Title: "Happy with it", Comment: "Good sound, good build. The manual is useless but you won't need it."},
	},
	3: {
		{Title: "Decent but not remarkable", Comment: "Works fine for basic use. If you push it hard you'll notice the limits quickly."},
		{Title: "Mixed feelings", Comment: "Some days it's great, some days the connection drops for no reason. Firmware updates help a little."},
	},
	2: {
		{Title: "Expected more", Comment: "Looks nice but the performance doesn't match the marketing. Returned mine after two weeks."},
		{Title: "Quality control issues", Comment: "My first unit arrived dead. The replacement works but rattles. Disappointing for the price."},
	},
}

var fashionTemplates = templateSet{
	5: {
		{Title: "Fits perfectly", Comment: "True to size and the fabric feels premium. Already ordered a second one in another color."},
		{Title: "Compliments every time", Comment: "The color is exactly like the photos and it washes well. My new favorite."},
		{Title: "Outstanding quality", Comment: "Stitching, fit, material, everything feels a class above the price point."},
	},
	4: {
		{Title: "Really nice piece", Comment: "Fits well and looks great. Runs slightly large, so consider sizing down."},
		{Title: "Good everyday choice", Comment: "Comfortable and holds its shape after washing. The color faded just a touch."},
		{Title: "Would buy again", Comment: "Solid quality for the price. Delivery took longer than expected."},
	},
	3: {
		{Title: "Okay for the price", Comment: "Looks good but the material is thinner than I hoped. Fine for occasional wear."},
		{Title: "Sizing is off", Comment: "Had to exchange for a different size. The fit guide isn't accurate."},
	},
	2: {
		{Title: "Not as pictured", Comment: "The color in person is noticeably different from the listing photos. Returning it."},
		{Title: "Fell apart quickly", Comment: "Seams started coming loose after a few wears. Can't recommend."},
	},
}

var homeGardenTemplates = templateSet{
	5: {
		{Title: "Transformed the room", Comment: "Looks far more expensive than it is. Assembly was straightforward and everything lined up."},
		{Title: "Exactly what I wanted", Comment: "Sturdy, beautiful finish, and it arrived well packaged. Couldn't ask for more."},
		{Title: "Guests always ask about it", Comment: "Great craftsmanship and the size is perfect for our space."},
	},
	4: {
		{Title: "Good quality overall", Comment: "Well made and easy to assemble. One panel had a small scuff, but it's hidden."},
		{Title: "Works great in our kitchen", Comment: "Practical and nice looking. Instructions could be clearer."},
		{Title: "Nice addition", Comment: "Does the job and looks good doing it. Slightly smaller than I pictured."},
	},
	3: {
		{Title: "Average", Comment: "It's fine. Materials feel a bit light and assembly took longer than it should have."},
		{Title: "Serviceable", Comment: "Looks okay from a distance. Up close the finish is uneven."},
	},
	2: {
		{Title: "Arrived damaged", Comment: "Corner was cracked out of the box. Replacement process was slow."},
		{Title: "Flimsy", Comment: "Wobbles no matter how much I tighten it. You get what you pay for."},
	},
}

var sportsTemplates = templateSet{
	5: {
		{Title: "Game changer for my training", Comment: "Comfortable, durable, and it holds up to daily use. Noticed the difference within a week."},
		{Title: "Top-tier gear", Comment: "Used it through a full season and it still looks new. Grip and support are excellent."},
		{Title: "Can't train without it now", Comment: "Perfect weight and feel. Survived months of heavy use without a scratch."},
	},
	4: {
		{Title: "Solid performer", Comment: "Does everything I need at the gym. The strap wore a little sooner than expected."},
		{Title: "Great for beginners and up", Comment: "Good build, comfortable, fair price. Sizing runs a bit small."},
		{Title: "Reliable", Comment: "Holds up to outdoor sessions just fine. Color options are limited."},
	},
	3: {
		{Title: "Gets the job done", Comment: "Fine for casual use, but serious training will push it past its limits."},
		{Title: "Middle of the road", Comment: "Comfort is good, durability is questionable. Showing wear after a month."},
	},
	2: {
		{Title: "Wore out fast", Comment: "Padding flattened within weeks. Had to replace it sooner than any gear I've owned."},
		{Title: "Not for regular use", Comment: "Okay for light workouts, but it started fraying under normal training."},
	},
}

var genericTemplates = templateSet{
	5: {
		{Title: "Couldn't be happier", Comment: "Exactly as described and arrived early. The quality genuinely surprised me."},
		{Title: "Five stars, easily", Comment: "Everything about this purchase went right. Will be buying from this store again."},
		{Title: "Highly recommend", Comment: "Great product, fair price, fast shipping. What more could you want?"},
	},
	4: {
		{Title: "Very good", Comment: "Small imperfections but nothing that affects daily use. Happy with the purchase."},
		{Title: "Worth it", Comment: "Good quality for the money. Packaging could have been better."},
		{Title: "Pleasantly surprised", Comment: "Better than I expected for the price. Minor quibbles only."},
	},
	3: {
		{Title: "It's okay", Comment: "Does what it says, nothing more. There are probably better options at this price."},
		{Title: "Average product", Comment: "Neither impressed nor disappointed. It works."},
	},
	2: {
		{Title: "Below expectations", Comment: "The photos flatter it. In hand it feels cheap."},
		{Title: "Wouldn't buy again", Comment: "Functional, barely. Several small annoyances add up."},
	},
}
