package bot

// User-facing chat text. The aggregation engine never formats messages;
// every string a user sees lives here.
const (
	welcomeMessage = `សួស្តី! ខ្ញុំជា Bot ដែលបង្កើត Menu ដោយស្វ័យប្រវត្តិ។

របៀបប្រើប្រាស់៖
១. ជ្រើសរើសបរិមាណម្ហូបដែលអ្នកចង់ Order
២. ចុចប៊ូតុង Vote ដើម្បីបញ្ជាក់
៣. រង់ចាំការជ្រើសរើសរួចរាល់ រួចចុចប៊ូតុង Order 🛒`

	menuQuestion = "តើអ្នកចង់ Order អ្វីខ្លះថ្ងៃនេះ?"

	voteButtonText  = "✅ Vote"
	resetButtonText = "🔄 Reset"
	orderButtonText = "🛒 Order"
	closeButtonText = "❌ Close Order"

	voteConfirmedFlash = "✅ បានកត់ត្រាការ Order របស់អ្នក!"
	orderClosedMessage = "ការបញ្ជាទិញត្រូវបានបិទ។"

	errMenuNotFound     = "ខ្ញុំមិនអាចរកឃើញ menu នេះទេ។"
	errNoOrders         = "មិនមានការបញ្ជាទិញណាមួយឡើយ។"
	errNoSelection      = "❗ You haven't selected any food yet!"
	errAlreadyVoted     = "អ្នកបាន Vote រួចហើយ។ ចុច Reset ដើម្បីកែប្រែ។"
	errOrderClosed      = "ការបញ្ជាទិញត្រូវបានបិទរួចហើយ។"
	errInvalidSelection = "ការជ្រើសរើសមិនត្រឹមត្រូវទេ។"
)
