package handlers

// User-facing notification texts. The UI is rendered in Arabic.
const (
	msgBadCredentials = "بيانات الدخول غير صحيحة"
	msgPatientAdded   = "تم إضافة المريض بنجاح. رقم المريض: %s"
	msgUsernameTaken  = "اسم المستخدم موجود بالفعل"
	msgDoctorAdded    = "تم إضافة الدكتور بنجاح"
	msgInvalidInput   = "يرجى تعبئة جميع الحقول المطلوبة"
)
