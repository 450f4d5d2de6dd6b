package flow

// Operator-facing messages. The bot speaks plain text; selection menus carry
// the interactive parts.
const (
	msgPromptTitle       = "✏️ Enter the product title:"
	msgPromptDescription = "📝 Enter the product description:"
	msgPromptMainImage   = "🖼️ Upload the main product image:"
	msgPromptGallery     = "📸 Upload gallery images (send /done when finished):"
	msgGalleryHint       = "📸 Upload the next photo or send /done:"
	msgPromptSizes       = "📏 Enter sizes separated by commas (e.g. 41,42,43):"
	msgPromptColor       = "🎨 Pick the product color:"
	msgPromptColorNew    = "🎨 Enter the new color (e.g. red):"
	msgPromptUpper       = "👕 Pick the upper material:"
	msgPromptUpperNew    = "👕 Enter the new upper material (e.g. fabric):"
	msgPromptSole        = "👟 Pick the sole material:"
	msgPromptSoleNew     = "👟 Enter the new sole material (e.g. rubber):"
	msgPromptUsage       = "🏃 Pick usages (tap again to unselect, then Done):"
	msgPromptUsageNew    = "🏃 Enter the new usage (e.g. running):"
	msgPromptSKU         = "🆔 Enter the product SKU (e.g. NK-J23-WB-M):"
	msgSKUTaken          = "⚠️ That SKU is already used by another product. Enter a different one."
	msgPromptPrice       = "💰 Enter the product price (e.g. 565000):"
	msgPromptTags        = "🏷️ Enter tags separated by commas, or send /skip:"
	msgPromptBrand       = "🏷️ Enter the product brand (e.g. Nike):"
	msgConfirmFooter     = "Send /confirm to publish or /cancel to abort."

	msgPromptEditSKU   = "🔍 Enter the SKU of the product to edit (e.g. NK-J23-WB-M):"
	msgSKUNotFound     = "⚠️ No product found with that SKU. Try again or send /cancel."
	msgPromptEditWhat  = "✏️ What would you like to edit?"
	msgPromptNewPrice  = "💰 Enter the new price (e.g. 600000):"
	msgPromptStockMode = "📦 How should the stock be changed?"
	msgPromptStockOne  = "📦 Enter the new stock quantity (0 marks everything out of stock):"
	msgBadNumber       = "⚠️ Please enter a valid number."
	msgBadStockList    = "⚠️ Separate quantities with commas (e.g. 1,2,3,0)."

	msgPromptLinkSKUs = "🔗 Enter the SKUs to link, separated by commas (e.g. NK-J23-WB-M,NK-J23-B-M):"

	msgExpectedPhoto = "⚠️ Please upload a photo."
	msgExpectedText  = "⚠️ Please answer with text."
	msgCancelled     = "❌ Cancelled. Send /start to begin again."
	msgNoActiveFlow  = "Nothing to cancel. Send /start to begin."
	msgGenericError  = "⚠️ Something went wrong. Please try again or contact the administrator."

	labelAddNewColor = "➕ Add new color"
	labelAddNewUpper = "➕ Add new upper material"
	labelAddNewSole  = "➕ Add new sole material"
	labelAddNewUsage = "➕ Add new usage"
	labelUsageNone   = "None"
	labelUsageDone   = "Done"
	labelEditPrice   = "Edit price"
	labelEditStock   = "Edit stock"
	labelStockSame   = "Same quantity for all variations"
	labelStockEach   = "Different quantity per variation"
)
