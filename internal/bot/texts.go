package bot

// Menu labels. These are the exact strings trained users already know; the
// router matches them verbatim, so changing one breaks the admin console.
const (
	LabelUserCount     = "👥 Userlar soni"
	LabelAddMovie      = "🎬 Kino qo'shish"
	LabelDeleteMovie   = "🗑 Kino o'chirish"
	LabelAddChannel    = "📺 Kanal qo'shish"
	LabelDeleteChannel = "❌ Kanal o'chirish"
	LabelSendAd        = "📢 Reklama yuborish"
	LabelBroadcast     = "💬 Xabar yuborish"
	LabelAddAdmin      = "👨‍💼 Admin qo'shish"
	LabelRemoveAdmin   = "🗑 Admin o'chirish"
	LabelListMovies    = "📋 Kinolar"
	LabelListChannels  = "📺 Kanallar"

	LabelCaptionKeep = "✅ Mavjud yozuvdan foydalanish"
	LabelCaptionNew  = "📝 Yangi yozuv qo'shish"
	LabelCaptionNone = "❌ Yozuv qo'shmaslik"

	LabelButtonYes = "✅ Ha, tugma qo'shish"
	LabelButtonNo  = "❌ Yo'q, tugmasiz"

	LabelAdPhoto = "🖼 Rasm"
	LabelAdVideo = "🎥 Video"
	LabelAdGIF   = "🎞 GIF"

	LabelCheckSubscription = "🔄 Tekshirish"
)

// Reply texts, Uzbek, kept byte-identical to what users already see.
const (
	msgWelcomeSuperAdmin = "👋 Xush kelibsiz, Super Admin!"
	msgWelcomeAdmin      = "👋 Xush kelibsiz, Admin!"
	msgChooseAction      = "Tanlang:"
	msgSendCode          = "🎬 Kino kodini yuboring:"
	msgSubscribePrompt   = "📺 Botdan foydalanish uchun quyidagi kanallarga obuna bo'ling:"

	msgUserCount = "📊 Jami userlar soni: %d"

	msgSendMovieFile     = "Kino faylini yuboring yoki forward qiling"
	msgCaptionChoice     = "Videodagi yozuv bilan nima qilmoqchisiz?"
	msgEnterNewCaption   = "Yangi yozuvni kiriting:"
	msgEnterCode         = "Kino kodini kiriting:"
	msgEnterTitle        = "Kino nomini kiriting:"
	msgCodeTaken         = "❌ Bu kod band. Boshqa kod kiriting:"
	msgMovieAdded        = "✅ Kino muvaffaqiyatli qo'shildi!"
	msgDeleteMoviePrompt = "O'chirmoqchi bo'lgan kino kodini yuboring:"
	msgMovieDeleted      = "✅ Kino muvaffaqiyatli o'chirildi!"
	msgMovieNotFound     = "❌ Bunday kodli kino topilmadi!"

	msgChannelFormat = "Kanal ma'lumotlarini quyidagi formatda yuboring:\n\n" +
		"KANAL_ID|NOMI|INVITE_LINK\n\n" +
		"Misol:\n" +
		"-1001234567890|My Channel|t.me/mychannel\n\n" +
		"⚠️ Eslatma:\n" +
		"- KANAL_ID - majburiy\n" +
		"- NOMI - majburiy\n" +
		"- INVITE_LINK - majburiy (yopiq kanal uchun to'liq invite link)"
	msgChannelBadFormat = "Noto'g'ri format. Qaytadan urinib ko'ring:\n\n" +
		"KANAL_ID|NOMI|INVITE_LINK\n\n" +
		"Barcha maydonlar majburiy!"
	msgChannelAdded        = "✅ Kanal muvaffaqiyatli qo'shildi!"
	msgChannelDeletePrompt = "O'chirmoqchi bo'lgan kanal ID sini yuboring:"
	msgChannelDeleted      = "✅ Kanal muvaffaqiyatli o'chirildi!"
	msgChannelNotFound     = "❌ Bunday ID li kanal topilmadi!"
	msgNoChannels          = "📭 Hozircha kanallar yo'q."
	msgNoMovies            = "📭 Hozircha kinolar yo'q."

	msgAdTypePrompt = "Reklama turini tanlang:"
	msgAdMediaPrompt = "Forward qilib yuboring yoki media yuboring.\n" +
		"Qo'llab quvvatlanadigan formatlar:\n" +
		"- Rasm\n" +
		"- Video\n" +
		"- GIF"
	msgAdKindMismatch  = "❌ Tanlangan turga mos kelmaydigan media. Qaytadan yuboring."
	msgAdMediaMissing  = "❌ Media fayli topilmadi. Qaytadan urinib ko'ring."
	msgAdTextPrompt    = "Reklama matnini kiriting:"
	msgButtonChoice    = "Tugma qo'shishni xohlaysizmi?"
	msgButtonLabel     = "Tugma matnini kiriting:\nMisol: Batafsil"
	msgButtonURL       = "Tugma uchun URL manzilini kiriting:\nMisol: https://example.com"
	msgBadURL          = "❌ Noto'g'ri URL formati. URL https:// bilan boshlanishi kerak."
	msgAdPreview       = "📤 Oldin sizga reklama ko'rinishini yuboraman..."
	msgAdStarting      = "📤 Reklama yuborish boshlanmoqda..."
	msgAdDone          = "✅ Reklama yuborish yakunlandi!\n\n📨 Yuborildi: %d ta\n❌ Yuborilmadi: %d ta"
	msgBroadcastPrompt = "Barcha foydalanuvchilarga yubormoqchi bo'lgan oddiy xabaringizni yuboring.\n" +
		"⚠️ Faqat matn yuborish mumkin!"
	msgBroadcastDone = "✅ Xabar yuborish yakunlandi!\n\n📨 Yuborildi: %d ta\n❌ Yuborilmadi: %d ta"

	msgAdminAddPrompt    = "Yangi admin ID raqamini yuboring:"
	msgAdminAdded        = "✅ Admin muvaffaqiyatli qo'shildi!"
	msgAdminAddFailed    = "❌ Bunday foydalanuvchi topilmadi yoki allaqachon admin!"
	msgAdminRemovePrompt = "O'chirmoqchi bo'lgan admin ID raqamini yuboring:"
	msgAdminRemoved      = "✅ Admin muvaffaqiyatli o'chirildi!"
	msgAdminNotFound     = "❌ Bunday admin topilmadi!"
	msgSuperAdminOnly    = "❌ Bu funksiya faqat super admin uchun!"
	msgBadNumericID      = "❌ Noto'g'ri format. ID raqam bo'lishi kerak."

	msgGenericError = "❌ Xatolik yuz berdi. Qaytadan urinib ko'ring."

	msgDownloadsSuffix = "\n\n📥 Yuklab olishlar: %d"
)
