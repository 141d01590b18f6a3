package notifier

const receivedBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
    <h2 style="color: #FFE103; text-shadow: 1px 1px 0 #000;">Booking Request Received!</h2>
    <p>Hi {{.Booking.Name}},</p>
    <p>Thanks for booking a table at PoppinFlea! We are verifying your payment and will confirm your booking shortly.</p>
    <div style="background-color: #f9fafb; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-size: 1.2rem; font-weight: bold;">Reference ID: #{{.Booking.RefID}}</p>
    </div>
    <ul style="list-style: none; padding: 0;">
        <li><strong>Date:</strong> {{.Booking.Date}}</li>
        <li><strong>Time:</strong> {{.Booking.TimeSlot}}</li>
        <li><strong>Area:</strong> {{.Booking.Area}}</li>
        <li><strong>Guests:</strong> {{.Booking.Adults}} Adults, {{.Booking.Children}} Children</li>
        <li><strong>Venue:</strong> {{.Venue}}</li>
    </ul>
    <p>You will receive a confirmation email once your payment is verified (approx 12-15 hrs).</p>
    <p style="font-size: 0.8rem; color: #888;">If you need to cancel, please contact us.</p>
</div>
`

const confirmedBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
    <h2 style="color: #FFE103; text-shadow: 1px 1px 0 #000;">Booking Confirmed!</h2>
    <p>Hi {{.Booking.Name}},</p>
    <p>Thanks for booking a table at PoppinFlea! Here are your details:</p>
    <div style="background-color: #f9fafb; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-size: 1.2rem; font-weight: bold;">Reference ID: #{{.Booking.RefID}}</p>
    </div>
    <ul style="list-style: none; padding: 0;">
        <li><strong>Date:</strong> {{.Booking.Date}}</li>
        <li><strong>Time:</strong> {{.Booking.TimeSlot}}</li>
        <li><strong>Area:</strong> {{.Booking.Area}}</li>
        <li><strong>Guests:</strong> {{.Booking.Adults}} Adults, {{.Booking.Children}} Children</li>
        <li><strong>Venue:</strong> {{.Venue}}</li>
    </ul>
    <p>We look forward to seeing you!</p>
    <p style="font-size: 0.8rem; color: #888;">If you need to cancel, please contact us.</p>
</div>
`

const verifiedBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
    <h2 style="color: #22c55e; text-shadow: 1px 1px 0 #000;">Payment Verified!</h2>
    <p>Hi {{.Booking.Name}},</p>
    <p>Great news! We have verified your payment and your booking is now <strong>CONFIRMED</strong>.</p>
    <div style="background-color: #f0fdf4; padding: 15px; border-radius: 8px; margin: 20px 0; border: 1px solid #22c55e;">
        <p style="margin: 0; font-size: 1.2rem; font-weight: bold; color: #15803d;">Reference ID: #{{.Booking.RefID}}</p>
    </div>
    <p>Please be at the venue on your booked time and show this email at the reception if needed.</p>
    <ul style="list-style: none; padding: 0;">
        <li><strong>Date:</strong> {{.Booking.Date}}</li>
        <li><strong>Time:</strong> {{.Booking.TimeSlot}}</li>
        <li><strong>Area:</strong> {{.Booking.Area}}</li>
        <li><strong>Guests:</strong> {{.Booking.Adults}} Adults, {{.Booking.Children}} Children</li>
        <li><strong>Venue:</strong> {{.Venue}}</li>
    </ul>
    <p>{{.ReimbursementNote}}</p>
    <p>See you there!</p>
</div>
`

const cancelledBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
    <h2 style="color: #ef4444;">Booking Cancelled</h2>
    <p>Hi {{.Booking.Name}},</p>
    <p>We are sorry, but your reservation at PoppinFlea has been cancelled.</p>
    <div style="background-color: #f9fafb; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-size: 1.2rem; font-weight: bold;">Reference ID: #{{.Booking.RefID}}</p>
    </div>
    <p>If you have any questions, please reply to this email.</p>
    <p>We hope to see you another time!</p>
</div>
`
