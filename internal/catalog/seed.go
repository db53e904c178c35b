package catalog

import "soupshoppe/internal/models"

func item(id string, typ models.ItemType, name, description string, tags ...string) models.MenuItem {
	if tags == nil {
		tags = []string{}
	}
	return models.MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Type:        string(typ),
		Tags:        models.StringSlice(tags),
	}
}

// BuiltinItems returns the seed catalog. Ids are small and deterministic;
// identity is immutable across releases so stored menus can reference them.
// Image URLs are not part of the seed; they arrive via the generated-images
// overlay.
func BuiltinItems() []models.MenuItem {
	return []models.MenuItem{
		// Soups
		item("s1", models.ItemTypeSoup, "Angus Beef Barley", ""),
		item("s2", models.ItemTypeSoup, "Athletic Freakster", ""),
		item("s3", models.ItemTypeSoup, "Beef Barley", ""),
		item("s4", models.ItemTypeSoup, "Beef Mushroom Barley", ""),
		item("s5", models.ItemTypeSoup, "Beef Vegetables", ""),
		item("s6", models.ItemTypeSoup, "Black Angus Beef Chilli", "Rich beef chilli with beans", "GF", "Comfort"),
		item("s7", models.ItemTypeSoup, "Broccoli Cheddar", "", "Vegetarian"),
		item("s8", models.ItemTypeSoup, "Broccoli Cauliflower", "", "Vegetarian"),
		item("s9", models.ItemTypeSoup, "Buffalo Chicken Soup", ""),
		item("s10", models.ItemTypeSoup, "Butternut Squash", "Roasted butternut squash with warm spices and coconut milk", "Vegan", "GF", "Seasonal"),
		item("s10b", models.ItemTypeSoup, "Butternut Squash Bisque", "", "Vegetarian"),
		item("s11", models.ItemTypeSoup, "Cabbage Soup", "", "Vegetarian"),
		item("s11b", models.ItemTypeSoup, "Carrot Bisque", "", "Vegetarian"),
		item("s11c", models.ItemTypeSoup, "Carrot Creamer", "", "Vegetarian"),
		item("s12", models.ItemTypeSoup, "Carrot Ginger", "", "GF", "VEG"),
		item("s12b", models.ItemTypeSoup, "Chickpeas Carrot Bisque", "", "GF", "VEG", "Vegetarian"),
		item("s13", models.ItemTypeSoup, "Chicken Buffalo Soup", ""),
		item("s14", models.ItemTypeSoup, "Chicken Florentine", ""),
		item("s15", models.ItemTypeSoup, "Chicken Lime Orzo", ""),
		item("s16", models.ItemTypeSoup, "Chicken Mushroom Orzo", ""),
		item("s17", models.ItemTypeSoup, "Chicken Noodle", "Hearty soup with tender chicken, fresh vegetables, and egg noodles", "Classic"),
		item("s18", models.ItemTypeSoup, "Chicken Pot Pie", ""),
		item("s19", models.ItemTypeSoup, "Chicken Spinach & Potato", ""),
		item("s20", models.ItemTypeSoup, "Chickpea Soup", "", "Vegetarian"),
		item("s21", models.ItemTypeSoup, "Chickpeas Whitebeans", "", "Vegetarian"),
		item("s22", models.ItemTypeSoup, "Chunky Celery", "", "GF", "VEG", "DF"),
		item("s23", models.ItemTypeSoup, "Clam Chowder", ""),
		item("s24", models.ItemTypeSoup, "Cornbeef Cabbage Chickpeas", ""),
		item("s25", models.ItemTypeSoup, "Cornbeef, Cabbage, Tomato DF", ""),
		item("s26", models.ItemTypeSoup, "Creamy Carrots", "", "Vegetarian"),
		item("s27", models.ItemTypeSoup, "Creamy Chicken Corn", ""),
		item("s28", models.ItemTypeSoup, "Creamy Chicken Rice", ""),
		item("s29", models.ItemTypeSoup, "Creamy Mushroom", "", "Vegetarian"),
		item("s30", models.ItemTypeSoup, "Creamy Rice Spinach", "", "Vegetarian"),
		item("s31", models.ItemTypeSoup, "Creamy Tomato Basil", "Rich, velvety tomato soup with fresh basil and cream", "Vegetarian"),
		item("s32", models.ItemTypeSoup, "French Onion", "Caramelized onions in rich beef broth, topped with Gruyère", "Signature", "GF", "DF"),
		item("s33", models.ItemTypeSoup, "Garden Minestrone", "Hearty Italian soup with fresh vegetables, beans, and pasta", "Vegan"),
		item("s34", models.ItemTypeSoup, "Gazpacho", "", "VEG", "GF", "COLD"),
		item("s35", models.ItemTypeSoup, "Golden Split Pea", "", "GF", "VEG"),
		item("s36", models.ItemTypeSoup, "Green Peas", "", "VEG"),
		item("s37", models.ItemTypeSoup, "Green Peas Ham", ""),
		item("s38", models.ItemTypeSoup, "Italian Wedding", ""),
		item("s39", models.ItemTypeSoup, "Kidney Bean", "", "GF", "VEG", "DF"),
		item("s40", models.ItemTypeSoup, "Lemon Chicken Orzo", ""),
		item("s41", models.ItemTypeSoup, "Lucky Lentil", "", "GF", "VEG", "DF"),
		item("s42", models.ItemTypeSoup, "Manhattan Clam Chowder", ""),
		item("s43", models.ItemTypeSoup, "Mushroom Barley", ""),
		item("s44", models.ItemTypeSoup, "Mushroom Bisque", "", "Vegetarian"),
		item("s45", models.ItemTypeSoup, "New England Clam Chowder", ""),
		item("s46", models.ItemTypeSoup, "Pasta Fagioli", "", "Vegetarian"),
		item("s47", models.ItemTypeSoup, "Potato Bacon", ""),
		item("s48", models.ItemTypeSoup, "Potato Bacon Cheddar", ""),
		item("s49", models.ItemTypeSoup, "Potato Cheddar Bacon", ""),
		item("s50", models.ItemTypeSoup, "Potato Soup", ""),
		item("s51", models.ItemTypeSoup, "Roasted Green Peas", "", "VEG"),
		item("s52", models.ItemTypeSoup, "Roasted Red Pepper Bisque", "", "Vegetarian"),
		item("s53", models.ItemTypeSoup, "Rustic Tomato", "", "GF", "Vegetarian"),
		item("s54", models.ItemTypeSoup, "Santa Fe Black Bean", "", "Vegetarian"),
		item("s55", models.ItemTypeSoup, "Seafood Bisque", "Creamy bisque with fresh shrimp, crab, and sherry", "Premium"),
		item("s56", models.ItemTypeSoup, "Smoked Ham Potato", ""),
		item("s57", models.ItemTypeSoup, "Southwest Black Beans", "", "GF", "VEG"),
		item("s58", models.ItemTypeSoup, "Spinach Orzo", "", "Vegetarian"),
		item("s59", models.ItemTypeSoup, "Summer Vegetable Soup", "", "Vegetarian"),
		item("s60", models.ItemTypeSoup, "Tomato Bisque", "", "GF", "Vegetarian"),
		item("s61", models.ItemTypeSoup, "Tomato Soup", "", "Vegetarian"),
		item("s62", models.ItemTypeSoup, "Vegetable Bisque", "", "Vegetarian"),
		item("s63", models.ItemTypeSoup, "White Chilli Turkey", "Spicy white bean chili with turkey", "GF", "Spicy"),
		item("s64", models.ItemTypeSoup, "Wild Rice & Vegetable", ""),
		item("s65", models.ItemTypeSoup, "Green Pea w/Ham", ""),
		item("s66", models.ItemTypeSoup, "Creamy Cauliflower", "", "Vegetarian"),
		item("s67", models.ItemTypeSoup, "Summer Veggies", "", "VEG"),
		item("s68", models.ItemTypeSoup, "Shrimp Chowder", ""),
		item("s69", models.ItemTypeSoup, "Split Pea", "", "Veg", "GF"),
		item("s70", models.ItemTypeSoup, "Shrimp & Corn Chowder", ""),
		item("s71", models.ItemTypeSoup, "Potato Cheddar & Bacon", ""),
		item("s72", models.ItemTypeSoup, "Lucky Lentil", ""),
		item("s73", models.ItemTypeSoup, "Lemon Chicken Orzo", ""),

		// Paninis
		item("p1", models.ItemTypePanini, "BBQ Meatballs", ""),
		item("p2", models.ItemTypePanini, "BBQ Pulled Pork", ""),
		item("p3", models.ItemTypePanini, "BBQ Turkey Bacon", ""),
		item("p4", models.ItemTypePanini, "Beef Corned Reuben", ""),
		item("p5", models.ItemTypePanini, "Broccoli Cheddar", "", "Vegetarian"),
		item("p6", models.ItemTypePanini, "Buffalo Chicken", ""),
		item("p7", models.ItemTypePanini, "Buffalo Chicken Cutlet, Blue Cheese, Bacon, Lettuce Tomato in Ciabatta", ""),
		item("p8", models.ItemTypePanini, "Buffalo Chicken Cutlet, Blue Cheese, Chipotle Mayo w/Cheddar", ""),
		item("p9", models.ItemTypePanini, "Corn Beef, Coleslaw, Swiss Cheese, 1000 Island Dressing", ""),
		item("p10", models.ItemTypePanini, "Crab Cake", ""),
		item("p11", models.ItemTypePanini, "Cuban Panini: Ham, Pork Pickle, Swiss Cheese, w/ Mustard", ""),
		item("p12", models.ItemTypePanini, "Curried Chicken Salad", ""),
		item("p13", models.ItemTypePanini, "Egg Salad", "", "Vegetarian"),
		item("p14", models.ItemTypePanini, "Grilled Chicken", ""),
		item("p15", models.ItemTypePanini, "Grilled Chicken, Bacon, Pesto-Mayo, Sauteed Onions, Pepper Jack Cheese, Lettuce & Tomato on Ciabatta", ""),
		item("p16", models.ItemTypePanini, "Grilled Chicken, Sauteed Pepper-Onions, Chipotle Mayo w/Cheddar", ""),
		item("p17", models.ItemTypePanini, "Grilled Chicken Pesto, Bacon, Peppers, Onions, Mix Shreaded Cheese, Lettuce, Tomato on Ciabatta", ""),
		item("p18", models.ItemTypePanini, "Grilled Chicken with Bacon, Chipotle & Pepper Jack", ""),
		item("p19", models.ItemTypePanini, "Ham, Pickle Ham, Mustard, Cheddar Cheese, Lettuce & Tomato", ""),
		item("p20", models.ItemTypePanini, "Ham, Swiss Cheese, Cole Slaw w/ Russian Dressing in Ciabatta", ""),
		item("p21", models.ItemTypePanini, "Ham, Turkey Joe, Coleslaw, Russian Dressing, Swiss, Lettuce, Tomato in Ciabatta", ""),
		item("p22", models.ItemTypePanini, "Ham Honey, Mustard, Sauteed Onions w/Provolone Cheese", ""),
		item("p23", models.ItemTypePanini, "Ham Mozzarella, Sweet Onion Relish", ""),
		item("p24", models.ItemTypePanini, "Herb Roasted Chicken w/ Mashed Potatoes", ""),
		item("p25", models.ItemTypePanini, "Honey Mustard, Cranberry Jam, Swiss Cheese, Ham, Bacon, Lettuce & Tomato", ""),
		item("p26", models.ItemTypePanini, "Meatball Parmesan", ""),
		item("p27", models.ItemTypePanini, "Pastrami in 1000 Island dressing, Mustard w/ Swiss Cheese", ""),
		item("p28", models.ItemTypePanini, "Pastrami Ruben, Sauerkraut, Swiss Cheese, Russian Dressing, Lettuce Tomato on Ciabatta", ""),
		item("p29", models.ItemTypePanini, "Pastrami, Sauerkraut, Swiss Cheese, Russian Dressing, Lettuce, Tomato on Ciabatta", ""),
		item("p30", models.ItemTypePanini, "Pesto Mayo, Grilled Chicken, Bacon, Lettuce & Tomato in Ciabatta", ""),
		item("p31", models.ItemTypePanini, "Pork Chop", ""),
		item("p32", models.ItemTypePanini, "Roast Beef, Lettuce, Tomatoes, Provolone, Horseradish Cream", ""),
		item("p33", models.ItemTypePanini, "Shreaded Chicken, BBQ BAcon, Sauteed Pepper Onions, Cheddar Cheese", ""),
		item("p34", models.ItemTypePanini, "Smoked Ham BBQ", "Smoked Ham, Bacon, Tomatoes, Cheddar BBQ sauce"),
		item("p35", models.ItemTypePanini, "Tuna Melt", ""),
		item("p36", models.ItemTypePanini, "Turkey & Cranberry", ""),
		item("p37", models.ItemTypePanini, "Turkey, Bacon, Cheddar, Tomato & Honeymustard", ""),
		item("p38", models.ItemTypePanini, "Turkey, Bacon, Ham, Honey Mustard, Lettuce, Tomato & Swiss Cheese", ""),
		item("p39", models.ItemTypePanini, "Turkey, Bacon, Pepperjack Cheese, Lettuce, Tomato w/ Ranch Dressing", ""),
		item("p40", models.ItemTypePanini, "Turkey, Brie Cheese, Chipotle Mayo", ""),
		item("p41", models.ItemTypePanini, "Ham Bacon on Ciabatta", "Ham and bacon on fresh ciabatta bread"),
		item("p42", models.ItemTypePanini, "Pastrami Reuben", ""),
		item("p43", models.ItemTypePanini, "Texas Meatloaf, Bacon, Cheddar & BBQ Sauce on Texan Toast", ""),
		item("p44", models.ItemTypePanini, "Godfather: Chicken Cutlet, Fresh Mozzarella, Bacon & Russian Dressing", ""),
		item("p45", models.ItemTypePanini, "Smothered Chicken w/ Caramelized Onions Mushrooms, Swiss & Horseradish", ""),
		item("p46", models.ItemTypePanini, "Chicken Cordon Bleu w/ Swiss, Tomato, Honey Mustard", ""),
		item("p47", models.ItemTypePanini, "Pastrami Reuben on Rye", ""),

		// Sandwiches
		item("sw1", models.ItemTypeSandwich, "Asian Grilled Chicken, Carrots, Tomato, Zucchini, Lettuce in Spinach Wrap", ""),
		item("sw2", models.ItemTypeSandwich, "Asian Sesame Grilled Chicken, Carrot, Cucumber in Sundried Tomato Wrap", ""),
		item("sw3", models.ItemTypeSandwich, "BBQ Grilled Chicken, Cheddar Cheese, Potato Salad & Mix Greens in Semolina Bread", ""),
		item("sw4", models.ItemTypeSandwich, "BBQ Grilled Chicken, Cheddar Cheese, Potato Salad in Spinach Wrap", ""),
		item("sw5", models.ItemTypeSandwich, "Blackened Chicken, Southwest Salad, Romaine, Tomato, Cucumber, Carrots, Corn Salsa, Red Onions with Chipotle Ranch", ""),
		item("sw6", models.ItemTypeSandwich, "Buffalo Chicken, Bacon, Blue Cheese, Lettuce & Tomatoes", ""),
		item("sw7", models.ItemTypeSandwich, "Caprese Chicken", "Grilled Chicken, Balsamic Glaze, Mix Greens, Mozzarella & Tomato"),
		item("sw8", models.ItemTypeSandwich, "Chicken, Bacon, Lettuce, Tomato, Ranch Dressing in Spinach Wrapp", ""),
		item("sw9", models.ItemTypeSandwich, "Chicken Caprese Mozzarella, Tomato, Basil and Balsamic Glaze in Sundried Tomato Wrap", ""),
		item("sw10", models.ItemTypeSandwich, "Chicken Cutlet, Bacon, Mayo Lettuce & Tomato in Spinach Wrap", ""),
		item("sw11", models.ItemTypeSandwich, "Cobb Salad", ""),
		item("sw12", models.ItemTypeSandwich, "Cod Sandwich", ""),
		item("sw13", models.ItemTypeSandwich, "Corn Beef, Coleslaw, Swiss Cheese, 1000 Island Dressing", ""),
		item("sw14", models.ItemTypeSandwich, "Crab Salad", ""),
		item("sw15", models.ItemTypeSandwich, "Curried Chicken Salad w/ Spinach & Miso Tomato", ""),
		item("sw16", models.ItemTypeSandwich, "Egg Salad, Bacon, Spinach, Lettuce, Tomato in a Wrapp", "", "Vegetarian"),
		item("sw17", models.ItemTypeSandwich, "Egg Salad Spinach Tomatoes Honeymustard", "", "Vegetarian"),
		item("sw18", models.ItemTypeSandwich, "Grilled BBQ Chicken, Bacon, Potato Salad, Cheddar Cheese, Mix Greens in Spinach Wrap", ""),
		item("sw19", models.ItemTypeSandwich, "Grilled BBQ Chicken, CHeddar Cheese, Potato Salad Organic Mix Green in a Wrapp", ""),
		item("sw20", models.ItemTypeSandwich, "Grilled Chicken, American Cheese, Avocado, Mayo, Lettuce & Tomato in Wrap", ""),
		item("sw21", models.ItemTypeSandwich, "Grilled Chicken, Buffalo, Bacon, Cheddar Cheese, Lettuce & Tomato in Wrap", ""),
		item("sw22", models.ItemTypeSandwich, "Grilled Chicken Bacon Cheddar Tomato", ""),
		item("sw23", models.ItemTypeSandwich, "Grilled Chichecn, Sauteed Onions, Roasted Red Pepper & Spinach Wrapp", ""),
		item("sw24", models.ItemTypeSandwich, "Halana Wrap: Grilled Chicken, American Cheese, Avocado, Mayo, Lettuce & Tomato", ""),
		item("sw25", models.ItemTypeSandwich, "Ham CHeddar, Pickle, Lettuce, Tomato- 1000 Island Dressing", ""),
		item("sw26", models.ItemTypeSandwich, "Ham Mozzarella Sweet Onion Relish Balsamic Glaze", ""),
		item("sw27", models.ItemTypeSandwich, "Ham Prosciutto Roasted Peppers Pesto", ""),
		item("sw28", models.ItemTypeSandwich, "Herb Roasted Turkey Pesto", ""),
		item("sw29", models.ItemTypeSandwich, "Homemade Chicken Pot Pie", ""),
		item("sw30", models.ItemTypeSandwich, "Jerk Roasted Chicken with Mashed Potatoes", ""),
		item("sw31", models.ItemTypeSandwich, "Pastrami, Coleslaw, Pickle, Lettuce, Tomato, Swiss Cheese in Whole wheat Wrapp", ""),
		item("sw32", models.ItemTypeSandwich, "Roasted Turkey Portobello Lettuce Tomato Pesto", ""),
		item("sw33", models.ItemTypeSandwich, "Smoked Ham, Sloppy Joes, Coles Slaw, Swiss Cheese & Russian Dressing", ""),
		item("sw34", models.ItemTypeSandwich, "Tuna Fish", "Tunafish Salad with Swiss Springmix & Tomatoes on Focaccia Bread"),
		item("sw35", models.ItemTypeSandwich, "Turkey, Bacon, Lettuce, Tomato with Pesto Mayo in Spinach Wrap", ""),
		item("sw36", models.ItemTypeSandwich, "Turkey Club, Mayo, Swiss Cheese, Bacon, Avocado, Lettuce Tomatoes", ""),
		item("sw37", models.ItemTypeSandwich, "Turkey Club Wrap", ""),
		item("sw38", models.ItemTypeSandwich, "Turkey, Bacon, Lettuce, Tomato, Mayo in Semolina Bread", ""),
		item("sw39", models.ItemTypeSandwich, "Turkey, BLT, Avocado and Mayo", ""),
		item("sw40", models.ItemTypeSandwich, "Turkey, Brie Cheese, Chipotle Mayo", ""),
		item("sw41", models.ItemTypeSandwich, "Turkey, Brie Cheese, Cranberries, Lattuce, Tomatoes Mayo in Semolina Bread", ""),
		item("sw42", models.ItemTypeSandwich, "Turkey, Fig Jam, Brie Cheese, Honey Mustard, Lettuce, Tomato in Spinach Bread", ""),
		item("sw43", models.ItemTypeSandwich, "Turkey Swiss Cheese BLT Pesto", ""),
		item("sw44", models.ItemTypeSandwich, "Ham Bacon in a Wrapp", "Ham and bacon wrapped in a fresh tortilla"),
		item("sw45", models.ItemTypeSandwich, "Grilled Chicken, Pesto Mayo, Sauteed Peppers-n-Onions, Lettuce, Tomato, Spinach in a Wrapp", ""),
		item("sw46", models.ItemTypeSandwich, "Egg Salad, Bacon, Lettuce, Onion, Tomato, in Spinach Wrap", ""),
		item("sw47", models.ItemTypeSandwich, "Roast Beef, Lettuce, Tomato, Onion, Provolone Cheese w/ Horse-Radish Cream", ""),
		item("sw48", models.ItemTypeSandwich, "Turkey Swiss Lettuce, Tomatoes, Cranberry, Mayo on 7 Grain", ""),
		item("sw49", models.ItemTypeSandwich, "Roastbeef, Fresh Mozzarella, Spinach, Sundried Tomatoes, Pesto Mayoon Spinach Wrap", ""),
		item("sw50", models.ItemTypeSandwich, "Egg Salad BLT on 7 Grain", ""),
		item("sw51", models.ItemTypeSandwich, "Shrimp Salad w/Lettuce, Tomatoes on a Wheat Bread", ""),
		item("sw52", models.ItemTypeSandwich, "Turkey Bacon, Pepperjack, Lettuce, Tomato, Chipotle Mayo on Semolina", ""),
		item("sw53", models.ItemTypeSandwich, "Pastrami Sloppy Joe in a Plain Wrapp", ""),
		item("sw54", models.ItemTypeSandwich, "Turkey, Bacon, Pepperjack, Lettuce, Tomatoes, & Ranch On Ciabatta", ""),

		// Salads
		item("sl1", models.ItemTypeSalad, "Apple Salad, Cucumber, Tomato, Onions, Carrot, w/ Italian Dressing", "", "Vegetarian"),
		item("sl2", models.ItemTypeSalad, "Arugula Mango Salad, Tomato, Cucumber, Onions, Carrots, Walnuts w/ Poppy Seed Dressing", "", "Vegetarian"),
		item("sl3", models.ItemTypeSalad, "Asian Salad: Chicken, Madarine, Almonds, Carrots, Cucumber, Tomato, Onions w/ Sesame Seed Asian Dressing", ""),
		item("sl4", models.ItemTypeSalad, "Asian Sesame Grilled Chicken Salad, Romaine, Mix Greens, Carrots, Mandarins, Tomato, Cucumber, Peppers with Asian Dressing", ""),
		item("sl5", models.ItemTypeSalad, "Blackened Chicken Caesar", ""),
		item("sl6", models.ItemTypeSalad, "Blueberries, Cranberries, Strawberries, Feta Cheese, Spinach, Salad, Walnut, Carrots, Tomatoes, Cucumber and Onion", "", "Vegetarian"),
		item("sl7", models.ItemTypeSalad, "Chef-Salad: Turkey, Ham, Romaine, Swiss, Hard Boiled Eggs, Cucumber, Carrots, Onion & Tomato w/ Ranch Dressing", ""),
		item("sl8", models.ItemTypeSalad, "Chicken Bruschetta, Mixed Greens, Chicken, Fresh Mozzarella, Bruschetta toppings w/Balsamic", ""),
		item("sl9", models.ItemTypeSalad, "Chicken Caesar Salad", ""),
		item("sl10", models.ItemTypeSalad, "Classic Cobb", "Grilled Chicken, Bacon, Tomato, Cucumber, Boiled Egg, Red Onions, Crumbled Blue Cheese w Ranch Dressing"),
		item("sl11", models.ItemTypeSalad, "Green Salad: Romaine, Grilled Chicken, Tomato, Cucumber, Carrots, Red Onions, Feta Cheese, Stuffed Leaves, Olives in Greek Dressing", ""),
		item("sl12", models.ItemTypeSalad, "Greek Salad, Romaine Lettuce, Red Onions, Cucumber, Carrots, Tomatoes, Stuffed Leaves, Feta Cheese, Grilled Chicken in Greek Dressing", ""),
		item("sl13", models.ItemTypeSalad, "Grilled Chicken Caesar", ""),
		item("sl14", models.ItemTypeSalad, "Mango- Cranberry Salad, Crrots, Cucumber, Tomato, Onions in Italian Dressing", ""),
		item("sl15", models.ItemTypeSalad, "Peach, Cranberries, Tomato, Onions, Cucumber, Feta Cheese w/ Poppyseed Dressing", "", "Vegetarian"),
		item("sl16", models.ItemTypeSalad, "Strawberry, Cranberry, Almonds, Feta Cheese, Cucumber, Carrots, Tomatoes, Poppy Seed Dressing", "", "Vegetarian"),
		item("sl17", models.ItemTypeSalad, "Summer Berry", "Mixed Greens, Tomatoes, Cucumbers, Grilled Chicken, Grapes, Pecans, Feta Cheese, Balsamic", "Seasonal"),
		item("sl18", models.ItemTypeSalad, "Tropical Salad: Mango, Strawberry, Organic MixGreen, Tomato, Cucumber, Onions in Italian Dressing", "", "Vegetarian"),

		// Entrees
		item("e1", models.ItemTypeEntree, "7 Cheese-Mac n Cheese", "", "Vegetarian"),
		item("e2", models.ItemTypeEntree, "Asian Fried Rice with Chicken", ""),
		item("e3", models.ItemTypeEntree, "Beef Stew w/ Egg Noodles", ""),
		item("e4", models.ItemTypeEntree, "Breaded Four Cheese, Ravioli, w/ Marinara Sauce", "", "Vegetarian"),
		item("e5", models.ItemTypeEntree, "Chicken Cutlet, Bacon, Mayo", ""),
		item("e6", models.ItemTypeEntree, "Chicken Lo Mein w/Vegetables", ""),
		item("e7", models.ItemTypeEntree, "Chicken Mulligatawny", ""),
		item("e8", models.ItemTypeEntree, "Chicken Stir Fry", ""),
		item("e9", models.ItemTypeEntree, "Chinese Chicken Fried Rice w/ Vegetables", ""),
		item("e10", models.ItemTypeEntree, "Creamy Chicken Rigatoni", ""),
		item("e11", models.ItemTypeEntree, "Creamy Mushroom Chicken with Rice", ""),
		item("e12", models.ItemTypeEntree, "Creamy Mushroom Penne Pasta w/ Grilled Chicken", ""),
		item("e13", models.ItemTypeEntree, "Egg Noodle with Teriyaki Meatballs", ""),
		item("e14", models.ItemTypeEntree, "Herb Roasted Chicken w/ Mashed Potatoes & Vegetables", ""),
		item("e15", models.ItemTypeEntree, "Herb Roasted Chicken with Mashed Potatoes and Sauteed Veggies", ""),
		item("e16", models.ItemTypeEntree, "Honey Roasted Chicken Pot Pie", ""),
		item("e17", models.ItemTypeEntree, "Jerk Roasted Chicken w/ Mashed Potatoes", ""),
		item("e18", models.ItemTypeEntree, "Mac & Cheese", "", "Vegetarian"),
		item("e19", models.ItemTypeEntree, "Mac N Cheese w/Bacon", ""),
		item("e20", models.ItemTypeEntree, "Oven Roasted Turkey, Stuffings, Mashed Potato w/Cranberry Sauce Gravy", ""),
		item("e21", models.ItemTypeEntree, "Penne Marinara with Chicken Parmesan", ""),
		item("e22", models.ItemTypeEntree, "Penne Pasta Marinara w/ Chicken Cutlet", ""),
		item("e23", models.ItemTypeEntree, "Penne Pasta Marinara Sauce w/Garlic Chicken", ""),
		item("e24", models.ItemTypeEntree, "Penne Vodka with Grilled Chicken", ""),
		item("e25", models.ItemTypeEntree, "Pork Loin w/Mashed Potatoes", ""),
		item("e26", models.ItemTypeEntree, "Pulled BBQ Chicken with Rice and Veggies", ""),
		item("e27", models.ItemTypeEntree, "Roasted Chicken w/Rice", ""),
		item("e28", models.ItemTypeEntree, "Seared Beef Topped w/ Mashed Potatoes", ""),
		item("e29", models.ItemTypeEntree, "Shepherd's Pie w/ side Salad", ""),
		item("e30", models.ItemTypeEntree, "Sweetheart Meatballs over Dutch Noodles", ""),
		item("e31", models.ItemTypeEntree, "Teriyaki Chicken", "Teriyaki Chicken Over Egg Noodles"),
		item("e32", models.ItemTypeEntree, "Teriyaki Meatballs w/ Jasmine Rice", ""),
		item("e33", models.ItemTypeEntree, "Tri-Color Tortellini with White Sauce", ""),
		item("e34", models.ItemTypeEntree, "Vegetable Soup (Optional Rice Add-On)", "", "Vegetarian"),
		item("e35", models.ItemTypeEntree, "Vodka Penne", "Rigatoni w/Vodka Sauce & Grilled Chicken with side Salad"),
		item("e36", models.ItemTypeEntree, "White Wine Penne Pasta with Grilled Chicken and Bacon", ""),
		item("e37", models.ItemTypeEntree, "Teriyaki Egg Noodles with Grilled Chicken & Meatballs", ""),
	}
}

// BuiltinIDs returns the set of seed item ids.
func BuiltinIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, it := range BuiltinItems() {
		ids[it.ID] = true
	}
	return ids
}
