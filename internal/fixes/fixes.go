// Package fixes holds the literal corrections this tool knows how to apply.
package fixes

// Fix pairs a known-bad fragment with its corrected replacement and the file
// it belongs to.
type Fix struct {
	Name   string
	Target string
	Old    string
	New    string
}

// ChatBotTarget is the file the chatbot fix applies to, relative to the
// working directory.
const ChatBotTarget = "src/components/ChatBot.jsx"

// The action branches inside the intent fallback were left one level short
// of indentation and the enclosing else was never closed.
const chatBotOld = `            } else {
                botResponse = generateResponse(intent);
                
                if (action === 'report') {
                botResponse = {
                    ...botResponse,
                    text: 'يمكنك الإبلاغ عن سيارة مفقودة من خلال الضغط على زر "إضافة سيارة" في الصفحة الرئيسية',
                    suggestions: [
                        { text: 'اذهب للصفحة الرئيسية', action: 'home' },
                        { text: 'هل تحتاج مساعدة أخرى؟', action: 'help' }
                    ]
                };
            } else if (action === 'investigator') {
                botResponse = {
                    ...botResponse,
                    text: 'يمكنك عرض قائمة المحققين المتخصصين والحجز معهم مباشرة',
                    suggestions: [
                        { text: 'عرض المحققين', action: 'investigators' },
                        { text: 'معلومات عن الخدمة', action: 'help' }
                    ]
                };
            } else if (action === 'faq_search') {
                botResponse = {
                    ...botResponse,
                    text: 'للبحث عن سيارة: استخدم شريط البحث العلوي، أدخل اسم الماركة أو الموديل أو رقم اللوحة، وسيظهر لك جميع السيارات المطابقة.'
                };
            }`

const chatBotNew = `            } else {
                botResponse = generateResponse(intent);
                
                if (action === 'report') {
                    botResponse = {
                        ...botResponse,
                        text: 'يمكنك الإبلاغ عن سيارة مفقودة من خلال الضغط على زر "إضافة سيارة" في الصفحة الرئيسية',
                        suggestions: [
                            { text: 'اذهب للصفحة الرئيسية', action: 'home' },
                            { text: 'هل تحتاج مساعدة أخرى؟', action: 'help' }
                        ]
                    };
                } else if (action === 'investigator') {
                    botResponse = {
                        ...botResponse,
                        text: 'يمكنك عرض قائمة المحققين المتخصصين والحجز معهم مباشرة',
                        suggestions: [
                            { text: 'عرض المحققين', action: 'investigators' },
                            { text: 'معلومات عن الخدمة', action: 'help' }
                        ]
                    };
                } else if (action === 'faq_search') {
                    botResponse = {
                        ...botResponse,
                        text: 'للبحث عن سيارة: استخدم شريط البحث العلوي، أدخل اسم الماركة أو الموديل أو رقم اللوحة، وسيظهر لك جميع السيارات المطابقة.'
                    };
                }
            }`

// ChatBotIndent re-indents the action branches of the chatbot response
// builder.
var ChatBotIndent = Fix{
	Name:   "chatbot-indent",
	Target: ChatBotTarget,
	Old:    chatBotOld,
	New:    chatBotNew,
}

// Default returns the fix applied when no other is selected.
func Default() Fix {
	return ChatBotIndent
}
